package seeds

import (
	"gorm.io/gorm"

	ops "yoda_backend/internals/seeds/ops"
	references "yoda_backend/internals/seeds/references"
)

func RunAllSeeds(db *gorm.DB) {
	//* Referensi
	references.SeedAreasFromJSON(db, "internals/seeds/references/data_areas.json")
	references.SeedOfflineSubjectsFromJSON(db, "internals/seeds/references/data_offline_subjects.json")
	references.SeedOnlineSubjectsFromJSON(db, "internals/seeds/references/data_online_subjects.json")
	references.SeedSchoolsFromJSON(db, "internals/seeds/references/data_schools.json")
	references.SeedUniversitiesFromJSON(db, "internals/seeds/references/data_universities.json")
	references.SeedUniversityFieldsOfStudyFromJSON(db, "internals/seeds/references/data_university_fields_of_study.json")
	references.SeedUniversityDegreesFromJSON(db, "internals/seeds/references/data_university_degrees.json")

	//* Ops
	ops.SeedAdminAccount(db)
}
