package main

import (
	"clinic-prescription-api/config"
	"clinic-prescription-api/internal/domain/entity"
	"clinic-prescription-api/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the database with a test doctor and a starter medicine catalog.
// Safe to run repeatedly: existing rows are left untouched.
func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	if err := database.RunMigrations(cfg.DB); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seedDoctor(db); err != nil {
		logrus.Fatalf("Failed to seed doctor: %v", err)
	}

	if err := seedMedicines(db); err != nil {
		logrus.Fatalf("Failed to seed medicines: %v", err)
	}

	logrus.Info("Seeding complete")
}

func seedDoctor(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	doctor := entity.Doctor{
		Email:        "doctor@test.com",
		PasswordHash: string(hash),
		Name:         "Dr. Test Doctor",
		Type:         "General Physician",
		MobileNumber: 9876543210,
	}

	result := db.Where(entity.Doctor{Email: doctor.Email}).FirstOrCreate(&doctor)
	if result.Error != nil {
		return result.Error
	}

	logrus.WithField("email", doctor.Email).Info("Doctor seeded")
	return nil
}

func seedMedicines(db *gorm.DB) error {
	medicines := []entity.Medicine{
		{Name: "Paracetamol", Dosage: "500mg", Type: "Tablet", Manufacturer: "Cipla"},
		{Name: "Paracetamol", Dosage: "650mg", Type: "Tablet", Manufacturer: "Cipla"},
		{Name: "Amoxicillin", Dosage: "250mg", Type: "Capsule", Manufacturer: "Sun Pharma"},
		{Name: "Amoxicillin", Dosage: "500mg", Type: "Capsule", Manufacturer: "Sun Pharma"},
		{Name: "Ibuprofen", Dosage: "200mg", Type: "Tablet", Manufacturer: "Abbott"},
		{Name: "Ibuprofen", Dosage: "400mg", Type: "Tablet", Manufacturer: "Abbott"},
		{Name: "Omeprazole", Dosage: "20mg", Type: "Capsule", Manufacturer: "Dr. Reddy's"},
		{Name: "Omeprazole", Dosage: "40mg", Type: "Capsule", Manufacturer: "Dr. Reddy's"},
		{Name: "Metformin", Dosage: "500mg", Type: "Tablet", Manufacturer: "USV"},
		{Name: "Metformin", Dosage: "850mg", Type: "Tablet", Manufacturer: "USV"},
		{Name: "Atorvastatin", Dosage: "10mg", Type: "Tablet", Manufacturer: "Pfizer"},
		{Name: "Atorvastatin", Dosage: "20mg", Type: "Tablet", Manufacturer: "Pfizer"},
		{Name: "Amlodipine", Dosage: "5mg", Type: "Tablet", Manufacturer: "Lupin"},
		{Name: "Amlodipine", Dosage: "10mg", Type: "Tablet", Manufacturer: "Lupin"},
		{Name: "Cough Syrup", Dosage: "100ml", Type: "Syrup", Manufacturer: "Himalaya"},
		{Name: "Vitamin D3", Dosage: "1000IU", Type: "Tablet", Manufacturer: "Mankind"},
		{Name: "Vitamin C", Dosage: "500mg", Type: "Tablet", Manufacturer: "Mankind"},
		{Name: "B-Complex", Dosage: "100mg", Type: "Capsule", Manufacturer: "Mankind"},
		{Name: "Insulin", Dosage: "100IU/ml", Type: "Injection", Manufacturer: "Novo Nordisk"},
		{Name: "Cetirizine", Dosage: "10mg", Type: "Tablet", Manufacturer: "Cipla"},
	}

	for i := range medicines {
		m := medicines[i]
		result := db.Where(entity.Medicine{Name: m.Name, Dosage: m.Dosage}).FirstOrCreate(&medicines[i])
		if result.Error != nil {
			return result.Error
		}
	}

	logrus.WithField("count", len(medicines)).Info("Medicines seeded")
	return nil
}
