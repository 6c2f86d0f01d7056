package forms

// Errors collects validation failures keyed by field name. Rules are applied
// independently so one submission reports every failing field at once.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

const (
	requiredMessage      = "This field is required."
	invalidDateMessage   = "Enter a valid date."
	invalidTimeMessage   = "Enter a valid time."
	invalidEmailMessage  = "Enter a valid email address."
	invalidChoiceMessage = "Select a valid choice. That choice is not one of the available choices."
)
