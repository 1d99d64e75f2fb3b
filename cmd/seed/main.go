package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"training-portal-backend/internal/config"
)

// Seeds the database with an admin account and demo partners, trainings and
// participants read from a YAML file. Intended for dev and test databases.

type seedParticipant struct {
	FullName      string `yaml:"full_name"`
	AadhaarNumber string `yaml:"aadhaar_number"`
	Email         string `yaml:"email"`
	Phone         string `yaml:"phone"`
}

type seedTraining struct {
	Title             string            `yaml:"title"`
	Theme             string            `yaml:"theme"`
	Description       string            `yaml:"description"`
	StartDate         string            `yaml:"start_date"`
	EndDate           string            `yaml:"end_date"`
	State             string            `yaml:"state"`
	District          string            `yaml:"district"`
	City              string            `yaml:"city"`
	Status            string            `yaml:"status"`
	ParticipantsCount int               `yaml:"participants_count"`
	Participants      []seedParticipant `yaml:"participants"`
}

type seedPartner struct {
	OrganizationName   string         `yaml:"organization_name"`
	OrganizationType   string         `yaml:"organization_type"`
	ContactPerson      string         `yaml:"contact_person"`
	Email              string         `yaml:"email"`
	Password           string         `yaml:"password"`
	Phone              string         `yaml:"phone"`
	State              string         `yaml:"state"`
	District           string         `yaml:"district"`
	RegistrationStatus string         `yaml:"registration_status"`
	Trainings          []seedTraining `yaml:"trainings"`
}

type seedAdmin struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type seedData struct {
	Admin    seedAdmin     `yaml:"admin"`
	Partners []seedPartner `yaml:"partners"`
}

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	seedPath := flag.String("seed", "scripts/seed.dev.yaml", "Path to seed data file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	data, err := readSeedFile(*seedPath)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	if err := populate(db, data); err != nil {
		log.Fatalf("Failed to populate data: %v", err)
	}

	log.Println("Seed data successfully populated")
}

func readSeedFile(path string) (*seedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data seedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func populate(db *sql.DB, data *seedData) error {
	adminID, err := insertUser(db, data.Admin.Email, data.Admin.Password, "admin")
	if err != nil {
		return err
	}
	log.Printf("Created admin user %d (%s)", adminID, data.Admin.Email)

	for _, p := range data.Partners {
		userID, err := insertUser(db, p.Email, p.Password, "partner")
		if err != nil {
			return err
		}

		status := p.RegistrationStatus
		if status == "" {
			status = "APPROVED"
		}
		var approvedAt *time.Time
		var approvedBy *int64
		if status == "APPROVED" {
			now := time.Now()
			approvedAt = &now
			approvedBy = &adminID
		}

		var partnerID int64
		err = db.QueryRow(`INSERT INTO partners (organization_name, organization_type, contact_person,
			email, phone, state, district, registration_status, account_status,
			approved_at, approved_by, user_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'ACTIVE', $9, $10, $11) RETURNING id`,
			p.OrganizationName, p.OrganizationType, p.ContactPerson,
			p.Email, p.Phone, p.State, p.District, status,
			approvedAt, approvedBy, userID).Scan(&partnerID)
		if err != nil {
			return err
		}
		if _, err := db.Exec(`UPDATE users SET partner_id = $1 WHERE id = $2`, partnerID, userID); err != nil {
			return err
		}
		log.Printf("Created partner %d (%s)", partnerID, p.OrganizationName)

		for _, t := range p.Trainings {
			if err := insertTraining(db, partnerID, adminID, p.OrganizationName, t); err != nil {
				return err
			}
		}
	}
	return nil
}

func insertUser(db *sql.DB, email, password, role string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	var id int64
	err = db.QueryRow(`INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3) RETURNING id`,
		email, string(hash), role).Scan(&id)
	return id, err
}

func insertTraining(db *sql.DB, partnerID, adminID int64, orgName string, t seedTraining) error {
	status := t.Status
	if status == "" {
		status = "APPROVED"
	}
	var approvedAt *time.Time
	var approvedBy *int64
	if status == "APPROVED" {
		now := time.Now()
		approvedAt = &now
		approvedBy = &adminID
	}

	var trainingID int64
	err := db.QueryRow(`INSERT INTO trainings (title, theme, description, start_date, end_date,
		state, district, city, participants_count, status, partner_id, approved_at, approved_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`,
		t.Title, t.Theme, t.Description, t.StartDate, t.EndDate,
		t.State, t.District, t.City, t.ParticipantsCount, status, partnerID,
		approvedAt, approvedBy).Scan(&trainingID)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, p := range t.Participants {
		_, err := db.Exec(`INSERT INTO participants (full_name, aadhaar_number, email, phone,
			training_id, training_title, training_theme, training_start_date, training_end_date,
			organization, certificate_issued, certificate_issued_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE, $11)`,
			p.FullName, p.AadhaarNumber, p.Email, p.Phone,
			trainingID, t.Title, t.Theme, t.StartDate, t.EndDate, orgName, now)
		if err != nil {
			return err
		}
	}
	log.Printf("Created training %d (%s) with %d participants", trainingID, t.Title, len(t.Participants))
	return nil
}
