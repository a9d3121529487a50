package database

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sahilchouksey/unimatch-api/model"
	"github.com/sahilchouksey/unimatch-api/services/eligibility"
	applog "github.com/sahilchouksey/unimatch-api/utils/logger"
)

// Seeder handles database seeding operations
type Seeder struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, log: applog.With("seed")}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	s.log.Info().Msg("Starting database seeding")

	// Run seeds in order (respecting foreign key constraints)
	if err := s.SeedUniversities(); err != nil {
		return fmt.Errorf("failed to seed universities: %w", err)
	}

	if err := s.SeedCourses(); err != nil {
		return fmt.Errorf("failed to seed courses: %w", err)
	}

	if err := s.SeedResidences(); err != nil {
		return fmt.Errorf("failed to seed residences: %w", err)
	}

	if err := s.SeedBursaries(); err != nil {
		return fmt.Errorf("failed to seed bursaries: %w", err)
	}

	if err := s.SeedCareers(); err != nil {
		return fmt.Errorf("failed to seed careers: %w", err)
	}

	s.log.Info().Msg("Database seeding completed")
	return nil
}

// exists reports whether the table for m already has rows
func (s *Seeder) exists(m interface{}, what string) (bool, error) {
	var count int64
	if err := s.db.Model(m).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		s.log.Info().Str("table", what).Msg("Already seeded, skipping")
		return true, nil
	}
	return false, nil
}

// SeedUniversities creates the universities referenced by the threshold table
func (s *Seeder) SeedUniversities() error {
	if done, err := s.exists(&model.University{}, "universities"); done || err != nil {
		return err
	}

	universities := []model.University{
		{Name: "University of Cape Town", Code: "UCT", Type: model.UniversityTraditional, City: "Cape Town", Province: "Western Cape", Website: "https://www.uct.ac.za", IsActive: true},
		{Name: "University of the Witwatersrand", Code: "WITS", Type: model.UniversityTraditional, City: "Johannesburg", Province: "Gauteng", Website: "https://www.wits.ac.za", IsActive: true},
		{Name: "Stellenbosch University", Code: "SU", Type: model.UniversityTraditional, City: "Stellenbosch", Province: "Western Cape", Website: "https://www.sun.ac.za", IsActive: true},
		{Name: "University of Pretoria", Code: "UP", Type: model.UniversityTraditional, City: "Pretoria", Province: "Gauteng", Website: "https://www.up.ac.za", IsActive: true},
		{Name: "University of KwaZulu-Natal", Code: "UKZN", Type: model.UniversityTraditional, City: "Durban", Province: "KwaZulu-Natal", Website: "https://www.ukzn.ac.za", IsActive: true},
		{Name: "University of Johannesburg", Code: "UJ", Type: model.UniversityComprehensive, City: "Johannesburg", Province: "Gauteng", Website: "https://www.uj.ac.za", IsActive: true},
	}

	if err := s.db.Create(&universities).Error; err != nil {
		return err
	}

	s.log.Info().Int("count", len(universities)).Msg("Created universities")
	return nil
}

type seedCourse struct {
	university string
	course     model.Course
	req        eligibility.RequirementSet
}

// SeedCourses creates sample programmes with their admission requirements
func (s *Seeder) SeedCourses() error {
	if done, err := s.exists(&model.Course{}, "courses"); done || err != nil {
		return err
	}

	byCode, err := s.universitiesByCode()
	if err != nil {
		return err
	}

	seeds := []seedCourse{
		{
			university: "UCT",
			course:     model.Course{Name: "BSc Computer Science", Code: "BSC-CS", Faculty: "Science", DurationYears: 3},
			req: eligibility.RequirementSet{
				MinimumAPS:  eligibility.Int(42),
				Mathematics: eligibility.Int(70),
				English:     eligibility.Int(60),
			},
		},
		{
			university: "UCT",
			course:     model.Course{Name: "Bachelor of Medicine and Bachelor of Surgery", Code: "MBCHB", Faculty: "Health Sciences", DurationYears: 6},
			req: eligibility.RequirementSet{
				MinimumAPS:             eligibility.Int(46),
				Mathematics:            eligibility.Int(70),
				PhysicalSciences:       eligibility.Int(70),
				LifeSciences:           eligibility.Int(70),
				AdditionalRequirements: []string{"National Benchmark Test", "Interview"},
			},
		},
		{
			university: "WITS",
			course:     model.Course{Name: "BSc Engineering (Electrical)", Code: "BSCENG-EE", Faculty: "Engineering", DurationYears: 4},
			req: eligibility.RequirementSet{
				MinimumAPS:       eligibility.Int(42),
				Mathematics:      eligibility.Int(80),
				PhysicalSciences: eligibility.Int(70),
				English:          eligibility.Int(60),
			},
		},
		{
			university: "SU",
			course:     model.Course{Name: "BCom Accounting", Code: "BCOM-ACC", Faculty: "Economic and Management Sciences", DurationYears: 3},
			req: eligibility.RequirementSet{
				MinimumAPS:  eligibility.Int(38),
				Mathematics: eligibility.Int(60),
				Accounting:  eligibility.Int(60),
			},
		},
		{
			university: "UP",
			course:     model.Course{Name: "BA Law", Code: "BA-LAW", Faculty: "Law", DurationYears: 3},
			req: eligibility.RequirementSet{
				MinimumAPS: eligibility.Int(34),
				English:    eligibility.Int(70),
				History:    eligibility.Int(50),
			},
		},
		{
			university: "UKZN",
			course:     model.Course{Name: "BSc Environmental Science", Code: "BSC-ENV", Faculty: "Science and Agriculture", DurationYears: 3},
			req: eligibility.RequirementSet{
				MinimumAPS:   eligibility.Int(30),
				Geography:    eligibility.Int(50),
				LifeSciences: eligibility.Int(50),
			},
		},
		{
			university: "UJ",
			course:     model.Course{Name: "Diploma in Economics", Code: "DIP-ECON", Faculty: "Economics and Econometrics", DurationYears: 3},
			req: eligibility.RequirementSet{
				MinimumAPS: eligibility.Int(24),
				Economics:  eligibility.Int(40),
			},
		},
	}

	courses := make([]model.Course, 0, len(seeds))
	for _, sc := range seeds {
		uni, ok := byCode[sc.university]
		if !ok {
			return fmt.Errorf("university %s not found, seed universities first", sc.university)
		}
		c := sc.course
		c.UniversityID = uni.ID
		c.Requirements = datatypes.NewJSONType(sc.req)
		courses = append(courses, c)
	}

	if err := s.db.Create(&courses).Error; err != nil {
		return err
	}

	s.log.Info().Int("count", len(courses)).Msg("Created courses")
	return nil
}

// SeedResidences creates one residence per university
func (s *Seeder) SeedResidences() error {
	if done, err := s.exists(&model.Residence{}, "residences"); done || err != nil {
		return err
	}

	byCode, err := s.universitiesByCode()
	if err != nil {
		return err
	}

	names := map[string]string{
		"UCT":  "Tugwell Hall",
		"WITS": "Knockando Residence",
		"SU":   "Eendrag",
		"UP":   "Tuks Village",
		"UKZN": "Howard College Residence",
		"UJ":   "Horizon Heights",
	}

	residences := make([]model.Residence, 0, len(names))
	for code, name := range names {
		uni, ok := byCode[code]
		if !ok {
			continue
		}
		residences = append(residences, model.Residence{
			UniversityID: uni.ID,
			Name:         name,
			Kind:         "mixed",
			Capacity:     300,
			MonthlyFee:   4500,
			Amenities:    datatypes.NewJSONSlice([]string{"Wi-Fi", "Laundry", "Study room"}),
		})
	}

	if err := s.db.Create(&residences).Error; err != nil {
		return err
	}

	s.log.Info().Int("count", len(residences)).Msg("Created residences")
	return nil
}

// SeedBursaries creates sample funding opportunities
func (s *Seeder) SeedBursaries() error {
	if done, err := s.exists(&model.Bursary{}, "bursaries"); done || err != nil {
		return err
	}

	bursaries := []model.Bursary{
		{
			Name:          "Funza Lushaka Teaching Bursary",
			Provider:      "Department of Basic Education",
			Description:   "Full-cost bursary for students training as teachers in priority subjects.",
			Amount:        120000,
			FieldsOfStudy: datatypes.NewJSONSlice([]string{"Education"}),
			Requirements:  datatypes.NewJSONType(eligibility.RequirementSet{MinimumAPS: eligibility.Int(26), English: eligibility.Int(50)}),
		},
		{
			Name:          "Sasol Engineering Bursary",
			Provider:      "Sasol",
			Description:   "Covers tuition, accommodation and books for engineering and science students.",
			Amount:        150000,
			FieldsOfStudy: datatypes.NewJSONSlice([]string{"Engineering", "Science"}),
			Requirements: datatypes.NewJSONType(eligibility.RequirementSet{
				MinimumAPS:       eligibility.Int(38),
				Mathematics:      eligibility.Int(70),
				PhysicalSciences: eligibility.Int(70),
			}),
		},
		{
			Name:          "SAICA Thuthuka Bursary",
			Provider:      "SAICA",
			Description:   "Supports aspiring chartered accountants.",
			Amount:        110000,
			FieldsOfStudy: datatypes.NewJSONSlice([]string{"Accounting"}),
			Requirements: datatypes.NewJSONType(eligibility.RequirementSet{
				Mathematics: eligibility.Int(60),
				Accounting:  eligibility.Int(60),
				English:     eligibility.Int(50),
			}),
		},
	}

	if err := s.db.Create(&bursaries).Error; err != nil {
		return err
	}

	s.log.Info().Int("count", len(bursaries)).Msg("Created bursaries")
	return nil
}

// SeedCareers creates sample careers
func (s *Seeder) SeedCareers() error {
	if done, err := s.exists(&model.Career{}, "careers"); done || err != nil {
		return err
	}

	careers := []model.Career{
		{
			Name:           "Software Developer",
			Sector:         "Information Technology",
			Description:    "Designs, builds and maintains software systems.",
			MedianSalary:   540000,
			RelatedCourses: datatypes.NewJSONSlice([]string{"BSC-CS"}),
			Requirements:   datatypes.NewJSONType(eligibility.RequirementSet{MinimumAPS: eligibility.Int(36), Mathematics: eligibility.Int(60)}),
		},
		{
			Name:           "Medical Doctor",
			Sector:         "Healthcare",
			Description:    "Diagnoses and treats patients.",
			MedianSalary:   900000,
			RelatedCourses: datatypes.NewJSONSlice([]string{"MBCHB"}),
			Requirements: datatypes.NewJSONType(eligibility.RequirementSet{
				MinimumAPS:       eligibility.Int(45),
				PhysicalSciences: eligibility.Int(70),
				LifeSciences:     eligibility.Int(70),
			}),
		},
		{
			Name:           "Chartered Accountant",
			Sector:         "Finance",
			Description:    "Audits, advises and reports on financial performance.",
			MedianSalary:   750000,
			RelatedCourses: datatypes.NewJSONSlice([]string{"BCOM-ACC"}),
			Requirements:   datatypes.NewJSONType(eligibility.RequirementSet{MinimumAPS: eligibility.Int(36), Accounting: eligibility.Int(60)}),
		},
		{
			Name:           "Environmental Scientist",
			Sector:         "Environment",
			Description:    "Studies and protects natural ecosystems.",
			MedianSalary:   420000,
			RelatedCourses: datatypes.NewJSONSlice([]string{"BSC-ENV"}),
			Requirements:   datatypes.NewJSONType(eligibility.RequirementSet{Geography: eligibility.Int(50)}),
		},
	}

	if err := s.db.Create(&careers).Error; err != nil {
		return err
	}

	s.log.Info().Int("count", len(careers)).Msg("Created careers")
	return nil
}

func (s *Seeder) universitiesByCode() (map[string]model.University, error) {
	var universities []model.University
	if err := s.db.Find(&universities).Error; err != nil {
		return nil, err
	}
	if len(universities) == 0 {
		return nil, fmt.Errorf("no universities found, seed universities first")
	}
	byCode := make(map[string]model.University, len(universities))
	for _, u := range universities {
		byCode[u.Code] = u
	}
	return byCode, nil
}

// RunSeeds is a convenience function to run all seeds
func RunSeeds(db *gorm.DB) error {
	seeder := NewSeeder(db)
	return seeder.SeedAll()
}
