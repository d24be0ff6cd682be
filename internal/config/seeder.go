package config

import (
	"log"

	"gu-notepro/internal/adapters/persistence/models"
	"gu-notepro/internal/core/domain"
	"gu-notepro/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles first-boot database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedStaffDirectory(); err != nil {
		log.Printf("⚠️ Staff directory seeder skipped: %v", err)
	}
	if err := s.seedDepartments(); err != nil {
		log.Printf("⚠️ Department seeder skipped: %v", err)
	}
	if err := s.seedSettings(); err != nil {
		log.Printf("⚠️ Settings seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

type seedStaff struct {
	id, name, designation, department string
	role                              domain.Role
	phone                             string
}

// Official staff registry compiled from statutory officers, departmental
// faculty, and administrative heads.
var initialStaff = []seedStaff{
	{"ADMIN01", "Digital Cell Administrator", "System Manager", "ICT Infrastructure", domain.RoleAdmin, "+91 94221 00001"},
	{"VC", "Dr. Prashant S. Bokare", "Vice-Chancellor", "Administration", domain.RoleStaff, "+91 94221 00002"},
	{"PVC", "Dr. Sriram S. Kawale", "Pro-Vice-Chancellor", "Administration", domain.RoleStaff, "+91 94221 00003"},
	{"REG", "Dr. Anil Hirekhan", "Registrar", "Registrar Office", domain.RoleStaff, "+91 94221 00004"},
	{"FO", "CA Mayur D. Gadekar", "Finance & Accounts Officer", "Finance Section", domain.RoleStaff, "+91 94221 00005"},
	{"DIR_EXAM", "Dr. Rajani Madane", "Director, Board of Examinations & Evaluation", "Examination Section", domain.RoleStaff, "+91 94221 00006"},
	{"DIR_IIL", "Dr. Manish Uttarwar", "Director, Innovation, Incubation & Linkages", "Innovation Cell", domain.RoleStaff, "+91 94221 00007"},
	{"DIR_SPORTS", "Dr. Anita Lokhande", "Director, Sports & Physical Education", "Sports Department", domain.RoleStaff, "+91 94221 00008"},
	{"DIR_NSS", "Dr. Sopandev Pise", "Director, National Service Scheme (NSS)", "NSS Department", domain.RoleStaff, "+91 94221 00009"},
	{"DIR_SDW", "Dr. Priyadarshani Khobragade", "Director, Students Development", "Student Welfare", domain.RoleStaff, "+91 94221 00010"},
	{"DIR_KRC", "Dr. S. M. Rokade", "Director, Knowledge Resource Center", "Knowledge Resource Center", domain.RoleStaff, "+91 94221 00011"},
	{"DEAN_ST", "Dr. S. S. Kawale", "Dean, Faculty of Science & Technology", "Administration", domain.RoleStaff, "+91 94221 00012"},
	{"DEAN_CM", "Dr. Vinayak Irpate", "Dean, Faculty of Commerce & Management", "Administration", domain.RoleStaff, "+91 94221 00013"},
	{"DEAN_HUM", "Dr. S. M. Rokade", "Dean, Faculty of Humanities", "Administration", domain.RoleStaff, "+91 94221 00014"},
	{"DEAN_IDS", "Dr. A. Chandramouli", "Dean, Faculty of Inter-disciplinary Studies", "Administration", domain.RoleStaff, "+91 94221 00015"},
	{"CS_HOD", "Dr. Krishna Karoo", "Assistant Professor & Head", "Department of Computer Science", domain.RoleStaff, "+91 94221 00016"},
	{"CS_FAC01", "Shri. R. M. Pant", "Assistant Professor", "Department of Computer Science", domain.RoleStaff, "+91 94221 00017"},
	{"ENG_HOD", "Dr. Vivek Joshi", "Professor & Head", "Department of English", domain.RoleStaff, "+91 94221 00018"},
	{"ENG_FAC01", "Dr. Silestin Meshram", "Assistant Professor", "Department of English", domain.RoleStaff, "+91 94221 00019"},
	{"MATH_HOD", "Dr. S. K. Singh", "Professor & Head", "Department of Mathematics", domain.RoleStaff, "+91 94221 00020"},
	{"MATH_FAC01", "Dr. S. S. Jaiswal", "Associate Professor", "Department of Mathematics", domain.RoleStaff, "+91 94221 00021"},
	{"CHEM_HOD", "Dr. S. B. Rewatkar", "Professor & Head", "Department of Chemistry", domain.RoleStaff, "+91 94221 00022"},
	{"CHEM_FAC01", "Dr. G. D. Deshmukh", "Assistant Professor", "Department of Chemistry", domain.RoleStaff, "+91 94221 00023"},
	{"PHYS_HOD", "Dr. J. V. Dadve", "Professor & Head", "Department of Physics", domain.RoleStaff, "+91 94221 00024"},
	{"PHYS_FAC01", "Dr. S. S. Kawale", "Professor", "Department of Physics", domain.RoleStaff, "+91 94221 00025"},
	{"BOT_HOD", "Dr. T. R. Bandre", "Professor & Head", "Department of Botany", domain.RoleStaff, "+91 94221 00026"},
	{"ZOO_HOD", "Dr. K. B. Nagarnaik", "Professor & Head", "Department of Zoology", domain.RoleStaff, "+91 94221 00027"},
	{"HIST_HOD", "Dr. S. M. Rokade", "Professor & Head", "Department of History", domain.RoleStaff, "+91 94221 00028"},
	{"SOC_HOD", "Dr. Priyadarshani Khobragade", "Associate Professor", "Department of Sociology", domain.RoleStaff, "+91 94221 00029"},
	{"ECON_HOD", "Dr. J. P. Deshmukh", "Professor & Head", "Department of Economics", domain.RoleStaff, "+91 94221 00030"},
	{"MC_HOD", "Dr. Nitin Thakare", "HOD, Mass Communication", "Department of Mass Communication", domain.RoleStaff, "+91 94221 00031"},
	{"LAW_HOD", "Dr. Rajshree Gade", "Assistant Professor & Head", "Department of Law", domain.RoleStaff, "+91 94221 00032"},
	{"SEC_ACAD", "Shri. Ishwar Randaye", "Assistant Registrar (Academic)", "Academic Section", domain.RoleStaff, "+91 94221 00033"},
	{"SEC_EST", "Shri. S. S. Waghmare", "Assistant Registrar (Establishment)", "Establishment Section", domain.RoleStaff, "+91 94221 00034"},
	{"SEC_GEN", "Shri. D. K. Meshram", "Assistant Registrar (General Administration)", "Administration", domain.RoleStaff, "+91 94221 00035"},
	{"SEC_EXAM_PRO", "Shri. Sunil Raut", "Assistant Registrar (Professional Exams)", "Examination Section", domain.RoleStaff, "+91 94221 00036"},
}

var initialDepartments = []string{
	"Administration",
	"Registrar Office",
	"Finance Section",
	"Examination Section",
	"Academic Section",
	"Establishment Section",
	"Innovation Cell",
	"Student Welfare",
	"Sports Department",
	"NSS Department",
	"Knowledge Resource Center",
	"Department of Computer Science",
	"Department of English",
	"Department of Physics",
	"Department of Chemistry",
	"Department of Mathematics",
	"Department of Law",
	"Department of History",
	"Department of Sociology",
	"Department of Economics",
	"Department of Marathi",
	"Department of Botany",
	"Department of Zoology",
	"Department of Mass Communication",
	"Department of Commerce",
	"ICT Infrastructure",
}

// seedStaffDirectory seeds the statutory staff registry on first boot.
// The shared bootstrap credential is a development convenience; accounts
// should be rotated through the admin panel before production use.
func (s *Seeder) seedStaffDirectory() error {
	var count int64
	s.db.Model(&models.Staff{}).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := password.Hash(getEnv("SEED_PASSWORD", "Pass"))
	if err != nil {
		return err
	}

	for _, member := range initialStaff {
		row := &models.Staff{
			ID:          member.id,
			Name:        member.name,
			Designation: member.designation,
			Department:  member.department,
			Role:        string(member.role),
			Password:    hash,
			Phone:       member.phone,
		}
		if err := s.db.Save(row).Error; err != nil {
			return err
		}
	}

	log.Printf("🌱 Seeded %d staff records", len(initialStaff))
	return nil
}

// seedDepartments seeds the initial unit list on first boot
func (s *Seeder) seedDepartments() error {
	var count int64
	s.db.Model(&models.Department{}).Count(&count)
	if count > 0 {
		return nil
	}

	for _, name := range initialDepartments {
		if err := s.db.Save(&models.Department{Name: name}).Error; err != nil {
			return err
		}
	}

	log.Printf("🌱 Seeded %d departments", len(initialDepartments))
	return nil
}

// seedSettings creates the branding record under its fixed id
func (s *Seeder) seedSettings() error {
	var count int64
	s.db.Model(&models.Setting{}).Where("id = ?", domain.SettingsID).Count(&count)
	if count > 0 {
		return nil
	}

	return s.db.Save(&models.Setting{
		ID:             domain.SettingsID,
		UniversityName: domain.UniversityName,
	}).Error
}
