package main

import (
	"log"

	"github.com/adriantr/eventhub/config"
	"github.com/adriantr/eventhub/internal/models"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Seeds a small set of sample records for local development.
func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatal("Error loading .env file")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("Failed to create sample data: %v", err)
	}

	log.Println("Successfully created sample data!")
}

func seed(db *gorm.DB) error {
	categoriesData := []models.Category{
		{Name: "Technology", Description: "Technology and programming events"},
		{Name: "Business", Description: "Business and entrepreneurship events"},
		{Name: "Education", Description: "Educational and academic events"},
		{Name: "Health", Description: "Health and wellness events"},
	}

	categories := make([]models.Category, 0, len(categoriesData))
	for _, data := range categoriesData {
		var category models.Category
		err := db.Where(models.Category{Name: data.Name}).Attrs(data).FirstOrCreate(&category).Error
		if err != nil {
			return err
		}
		categories = append(categories, category)
		log.Printf("Created category: %s", category.Name)
	}

	today := models.Today()
	eventsData := []models.Event{
		{
			Name:        "Go Workshop",
			Description: "Learn Go web development",
			Date:        today.AddDate(0, 0, 14),
			Time:        "10:00",
			Location:    "Tech Center",
			CategoryID:  categories[0].ID,
		},
		{
			Name:        "Startup Pitch Competition",
			Description: "Present your startup ideas",
			Date:        today.AddDate(0, 0, 21),
			Time:        "14:00",
			Location:    "Business Hub",
			CategoryID:  categories[1].ID,
		},
	}

	events := make([]models.Event, 0, len(eventsData))
	for _, data := range eventsData {
		var event models.Event
		err := db.Where(models.Event{Name: data.Name}).Attrs(data).FirstOrCreate(&event).Error
		if err != nil {
			return err
		}
		events = append(events, event)
		log.Printf("Created event: %s", event.Name)
	}

	participantsData := []models.Participant{
		{Name: "John Doe", Email: "john@example.com"},
		{Name: "Jane Smith", Email: "jane@example.com"},
	}

	for _, data := range participantsData {
		var participant models.Participant
		err := db.Where(models.Participant{Email: data.Email}).Attrs(data).FirstOrCreate(&participant).Error
		if err != nil {
			return err
		}
		if err := db.Model(&participant).Association("Events").Append(&events[0]); err != nil {
			return err
		}
		log.Printf("Created participant: %s", participant.Name)
	}

	return nil
}
