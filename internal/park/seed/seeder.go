package seed

import (
	"encoding/json"
	"log"
	"os"

	"parkhub-backend/internal/park/domain"
	"parkhub-backend/internal/park/repository"
)

// Run seeds the parks table from the JSON fixture when the table is empty.
// Errors are logged and swallowed; seeding failure never blocks startup.
func Run(parkRepo repository.ParkRepository, dataFile string) {
	count, err := parkRepo.Count()
	if err != nil {
		log.Printf("[ERROR] park seeding: count failed: %v", err)
		return
	}
	if count > 0 {
		log.Println("Data seeding not required")
		return
	}

	raw, err := os.ReadFile(dataFile)
	if err != nil {
		log.Printf("[ERROR] park seeding: read %s: %v", dataFile, err)
		return
	}

	var parks []*domain.Park
	if err := json.Unmarshal(raw, &parks); err != nil {
		log.Printf("[ERROR] park seeding: parse %s: %v", dataFile, err)
		return
	}
	if len(parks) == 0 {
		return
	}

	if err := parkRepo.CreateAll(parks); err != nil {
		log.Printf("[ERROR] park seeding: insert: %v", err)
		return
	}
	log.Printf("Seeded %d parks from %s", len(parks), dataFile)
}
