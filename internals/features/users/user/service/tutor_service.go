// file: internals/features/users/user/service/tutor_service.go
package service

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"yoda_backend/internals/constants"
	dto "yoda_backend/internals/features/users/user/dto"
	userModel "yoda_backend/internals/features/users/user/model"
	helper "yoda_backend/internals/helpers"
	"yoda_backend/internals/helpers/oss"
)

var ErrUnknownInstitutionType = errors.New("unknown institution type")

// UpdatePersonalInformation — simpan form personal information tutor dan
// hitung ulang kelengkapannya. Ganti nama = slug baru, slug lama tetap
// resolvable lewat old_slug.
func UpdatePersonalInformation(db *gorm.DB, tutor *userModel.Tutor, in dto.TutorPersonalInformationRequest, displayPicture, governmentIDPicture *multipart.FileHeader) error {
	if in.FullName != nil && *in.FullName != tutor.FullName {
		tutor.FullName = *in.FullName
		newSlug, err := helper.EnsureUniqueTutorSlug(db, helper.Slugify(*in.FullName, 100))
		if err != nil {
			return err
		}
		tutor.OldSlug = tutor.Slug
		tutor.Slug = &newSlug
	}

	if in.AcademicMedium != nil {
		tutor.AcademicMedium = in.AcademicMedium
	}
	if in.AcademicFieldOfStudy != nil {
		tutor.AcademicFieldOfStudy = in.AcademicFieldOfStudy
	}
	if in.Gender != nil {
		tutor.Gender = in.Gender
	}
	if in.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *in.DateOfBirth)
		if err != nil {
			return err
		}
		tutor.DateOfBirth = &dob
	}
	if in.About != nil {
		tutor.About = in.About
	}
	if in.HomeAreaID != nil {
		tutor.HomeAreaID = in.HomeAreaID
	}
	if in.GovernmentIDType != nil {
		tutor.GovernmentIDType = in.GovernmentIDType
	}
	if in.GovernmentIDNumber != nil {
		tutor.GovernmentIDNumber = in.GovernmentIDNumber
	}
	if in.Email != nil {
		tutor.Email = in.Email
		tutor.IsEmailVerified = false
	}

	if displayPicture != nil {
		url, err := oss.UploadPicture("display-pictures/tutors", displayPicture)
		if err != nil {
			return err
		}
		tutor.DisplayPicture = &url
	}
	if governmentIDPicture != nil {
		url, err := oss.UploadPicture("government-ids", governmentIDPicture)
		if err != nil {
			return err
		}
		tutor.GovernmentIDPicture = &url
	}

	tutor.RecomputePersonalInformationComplete()
	return db.Save(tutor).Error
}

// UpdateTeachingPreferences — simpan preferensi mengajar + recompute.
func UpdateTeachingPreferences(db *gorm.DB, tutor *userModel.Tutor, in dto.TutorTeachingPreferencesRequest) error {
	if in.WantsToTeachOffline != nil {
		tutor.WantsToTeachOffline = *in.WantsToTeachOffline
	}
	if in.WantsToTeachOnline != nil {
		tutor.WantsToTeachOnline = *in.WantsToTeachOnline
	}
	if in.OfflinePreferredTeachingAreas != nil {
		tutor.OfflinePreferredTeachingAreas = pq.Int64Array(in.OfflinePreferredTeachingAreas)
	}
	if in.OfflinePreferredTeachingSubjects != nil {
		tutor.OfflinePreferredTeachingSubjects = pq.Int64Array(in.OfflinePreferredTeachingSubjects)
	}
	if in.OnlinePreferredTeachingSubjects != nil {
		tutor.OnlinePreferredTeachingSubjects = pq.Int64Array(in.OnlinePreferredTeachingSubjects)
	}
	if in.OnlineHourlyRate != nil {
		tutor.OnlineHourlyRate = in.OnlineHourlyRate
	}
	if in.Schedule != nil {
		tutor.Schedule = pq.BoolArray(in.Schedule)
	}
	if in.ScheduleIsFlexible != nil {
		tutor.ScheduleIsFlexible = *in.ScheduleIsFlexible
	}
	if in.SalaryRangeStart != nil {
		tutor.SalaryRangeStart = in.SalaryRangeStart
	}
	if in.SalaryRangeEnd != nil {
		tutor.SalaryRangeEnd = in.SalaryRangeEnd
	}

	tutor.RecomputeTeachingPreferencesComplete()
	return db.Save(tutor).Error
}

// UpdateAcademicBackground — update satu record AB tutor sesuai
// institution_type lalu recompute is_complete record itu.
func UpdateAcademicBackground(db *gorm.DB, tutor *userModel.Tutor, in dto.TutorAcademicBackgroundRequest, documentPicture *multipart.FileHeader) (*userModel.AcademicBackground, error) {
	var abID uint
	switch in.InstitutionType {
	case constants.InstitutionSchool:
		abID = tutor.SchoolABID
	case constants.InstitutionCollege:
		abID = tutor.CollegeABID
	case constants.InstitutionUniversity:
		abID = tutor.UndergraduateUniversityABID
	default:
		return nil, ErrUnknownInstitutionType
	}

	var ab userModel.AcademicBackground
	if err := db.First(&ab, abID).Error; err != nil {
		return nil, err
	}

	if in.NameOfInstitution != nil {
		ab.NameOfInstitution = in.NameOfInstitution
	}
	if in.NameOfDegree != nil {
		ab.NameOfDegree = in.NameOfDegree
	}
	if in.FieldOfStudy != nil {
		ab.FieldOfStudy = in.FieldOfStudy
	}
	if in.Medium != nil {
		ab.Medium = in.Medium
	}
	if in.BanglaMediumVersion != nil {
		ab.BanglaMediumVersion = in.BanglaMediumVersion
	}
	if in.EnglishMediumCurriculum != nil {
		ab.EnglishMediumCurriculum = in.EnglishMediumCurriculum
	}
	if in.StartYear != nil {
		ab.StartYear = in.StartYear
	}
	if in.EndYear != nil {
		ab.EndYear = in.EndYear
	}

	if documentPicture != nil {
		url, err := oss.UploadPicture("academic-documents", documentPicture)
		if err != nil {
			return nil, err
		}
		ab.IdentificationDocumentPicture = &url
	}

	ab.RecomputeComplete()
	if err := db.Save(&ab).Error; err != nil {
		return nil, err
	}
	return &ab, nil
}

// listableTutorQuery — tutor yang boleh tampil ke parent: hidup,
// diverifikasi ops, profil lengkap.
func listableTutorQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&userModel.Tutor{}).
		Where("is_suspended_by_ops = FALSE AND is_deleted = FALSE").
		Where("is_verified_by_ops = TRUE").
		Where("is_personal_information_complete = TRUE AND is_teaching_preferences_complete = TRUE")
}

// FilterTutors — pencarian parent. Premium duluan, sisanya diacak supaya
// tutor baru juga kebagian tampil.
func FilterTutors(db *gorm.DB, country string, in dto.TutorFilterRequest, paging helper.Paging) ([]userModel.Tutor, int64, error) {
	q := listableTutorQuery(db).Where("country = ?", country)

	if in.Gender != nil {
		q = q.Where("gender = ?", *in.Gender)
	}
	if in.TeachingAreaID != nil {
		q = q.Where("? = ANY(offline_preferred_teaching_areas)", *in.TeachingAreaID)
	}
	if in.TeachingSubjectID != nil {
		q = q.Where(
			"? = ANY(offline_preferred_teaching_subjects) OR ? = ANY(online_preferred_teaching_subjects)",
			*in.TeachingSubjectID, *in.TeachingSubjectID,
		)
	}
	if in.AcademicMedium != nil {
		q = q.Where("academic_medium = ?", *in.AcademicMedium)
	}
	if in.UndergraduateUniversityID != nil {
		q = q.Where("undergraduate_university_id = ?", *in.UndergraduateUniversityID)
	}
	if in.SalaryMax != nil {
		q = q.Where("salary_range_start <= ?", *in.SalaryMax)
	}
	if in.WantsToTeachOnline != nil {
		q = q.Where("wants_to_teach_online = ?", *in.WantsToTeachOnline)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tutors []userModel.Tutor
	err := q.
		Order("(date_till_premium_account_valid > NOW()) DESC, RANDOM()").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&tutors).Error
	return tutors, total, err
}

// PublicTutorDetails — profil publik via uuid; AB ikut dimuat.
func PublicTutorDetails(db *gorm.DB, tutorUUID string) (*userModel.Tutor, error) {
	var tutor userModel.Tutor
	err := listableTutorQuery(db).
		Preload("UndergraduateUniversityAB").
		Preload("SchoolAB").
		Preload("CollegeAB").
		Where("uuid = ?", tutorUUID).
		First(&tutor).Error
	if err != nil {
		return nil, err
	}
	return &tutor, nil
}

// AddPublicProfileView — increment atomik, tanpa baca dulu.
func AddPublicProfileView(db *gorm.DB, tutorUUID string) error {
	res := db.Model(&userModel.Tutor{}).
		Where("uuid = ?", tutorUUID).
		UpdateColumn("number_of_public_profile_views", gorm.Expr("number_of_public_profile_views + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ResolveTutorSlug — slug aktif atau old_slug (setelah ganti nama).
func ResolveTutorSlug(db *gorm.DB, slug string) (*userModel.Tutor, error) {
	var tutor userModel.Tutor
	err := db.
		Where("is_suspended_by_ops = FALSE AND is_deleted = FALSE").
		Where("slug = ? OR old_slug = ?", slug, slug).
		First(&tutor).Error
	if err != nil {
		return nil, err
	}
	return &tutor, nil
}
