// file: internals/seeds/references/seed_references.go
package references

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	refModel "yoda_backend/internals/features/references/model"
)

// Seeder data referensi. Idempotent: tabel yang sudah terisi dilewati.

func seedFromJSON[T any](db *gorm.DB, filePath, table string) {
	var count int64
	if err := db.Table(table).Count(&count).Error; err != nil {
		log.Printf("❌ Gagal cek tabel %s: %v", table, err)
		return
	}
	if count > 0 {
		log.Printf("⏭️  %s sudah terisi (%d baris), skip", table, count)
		return
	}

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca %s: %v", filePath, err)
		return
	}

	var rows []T
	if err := json.Unmarshal(file, &rows); err != nil {
		log.Printf("❌ Gagal decode %s: %v", filePath, err)
		return
	}

	if err := db.CreateInBatches(&rows, 200).Error; err != nil {
		log.Printf("❌ Gagal insert %s: %v", table, err)
		return
	}
	log.Printf("✅ Seed %s: %d baris", table, len(rows))
}

func SeedAreasFromJSON(db *gorm.DB, filePath string) {
	seedFromJSON[refModel.Area](db, filePath, "areas")
}

func SeedOfflineSubjectsFromJSON(db *gorm.DB, filePath string) {
	seedFromJSON[refModel.OfflineSubject](db, filePath, "offline_subjects")
}

func SeedOnlineSubjectsFromJSON(db *gorm.DB, filePath string) {
	seedFromJSON[refModel.OnlineSubject](db, filePath, "online_subjects")
}

func SeedSchoolsFromJSON(db *gorm.DB, filePath string) {
	seedFromJSON[refModel.School](db, filePath, "schools")
}

// Grade sengaja tidak diekspos di JSON API, jadi perlu struct perantara.
type universitySeed struct {
	Name    string `json:"name"`
	Grade   *int   `json:"grade"`
	Country string `json:"country"`
}

func SeedUniversitiesFromJSON(db *gorm.DB, filePath string) {
	var count int64
	if err := db.Table("universities").Count(&count).Error; err != nil {
		log.Printf("❌ Gagal cek tabel universities: %v", err)
		return
	}
	if count > 0 {
		log.Printf("⏭️  universities sudah terisi (%d baris), skip", count)
		return
	}

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca %s: %v", filePath, err)
		return
	}

	var seeds []universitySeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Printf("❌ Gagal decode %s: %v", filePath, err)
		return
	}

	rows := make([]refModel.University, 0, len(seeds))
	for _, s := range seeds {
		rows = append(rows, refModel.University{Name: s.Name, Grade: s.Grade, Country: s.Country})
	}
	if err := db.CreateInBatches(&rows, 200).Error; err != nil {
		log.Printf("❌ Gagal insert universities: %v", err)
		return
	}
	log.Printf("✅ Seed universities: %d baris", len(rows))
}

func SeedUniversityFieldsOfStudyFromJSON(db *gorm.DB, filePath string) {
	seedFromJSON[refModel.UniversityFieldOfStudy](db, filePath, "university_fields_of_study")
}

func SeedUniversityDegreesFromJSON(db *gorm.DB, filePath string) {
	seedFromJSON[refModel.UniversityDegree](db, filePath, "university_degrees")
}
