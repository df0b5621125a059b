package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"expofloor/internal/database"
	"expofloor/internal/domain"
	"expofloor/internal/repository"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema and seed management for expofloor",
	}
	root.AddCommand(migrateCmd(), seedCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create or update all tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Connect(mustDSN())
			if err != nil {
				return err
			}
			if err := repository.Migrate(db); err != nil {
				return err
			}
			log.Println("migration complete")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed an admin user and a sample exhibition with halls and stalls",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Connect(mustDSN())
			if err != nil {
				return err
			}
			if err := repository.Migrate(db); err != nil {
				return err
			}
			ctx := context.Background()

			if err := seedAdmin(ctx, repository.NewUserRepository(db)); err != nil {
				return err
			}
			return seedExhibition(ctx, db)
		},
	}
}

func seedAdmin(ctx context.Context, users *repository.UserRepository) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@expofloor.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Println("ADMIN_PASSWORD not set, seeding default credentials for local use only")
	}

	exists, err := users.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		log.Printf("admin %s already present, skipping", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Floor Admin",
		Role:         domain.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("seeded admin %s", email)
	return nil
}

func seedExhibition(ctx context.Context, db *gorm.DB) error {
	exhibitions := repository.NewExhibitionRepository(db)
	halls := repository.NewHallRepository(db)
	stalls := repository.NewStallRepository(db)

	existing, err := exhibitions.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Println("exhibitions already present, skipping seed")
		return nil
	}

	now := time.Now()
	ex := &domain.Exhibition{
		Name:        "Central Asia Trade Expo",
		Description: "Sample exhibition for local development",
		Venue:       "Atakent Expo Center",
		City:        "Almaty",
		Width:       120,
		Height:      80,
		StartsAt:    now.AddDate(0, 1, 0),
		EndsAt:      now.AddDate(0, 1, 4),
		RateCard: domain.RateCard{
			StallRates: []domain.StallRate{
				{StallType: "standard", RatePerSqm: 100},
				{StallType: "premium", RatePerSqm: 250},
				{StallType: "corner", RatePerSqm: 180},
			},
			Taxes: []domain.TaxConfig{
				{Name: "VAT", Rate: 12, IsActive: true},
			},
			PublicDiscounts: []domain.DiscountConfig{
				{Name: "EARLYBIRD", Type: domain.DiscountPercentage, Value: 10, IsActive: true},
			},
			BasicAmenities: []domain.BasicAmenity{
				{Name: "Power socket", PerSqm: 10, Quantity: 1},
				{Name: "Chair", PerSqm: 5, Quantity: 2},
			},
			Amenities: []domain.Amenity{
				{ID: 1, Name: "LED screen", Rate: 15000, Description: "55 inch display, per day"},
				{ID: 2, Name: "Storage locker", Rate: 3000},
			},
		},
	}
	if err := exhibitions.Create(ctx, ex); err != nil {
		return err
	}

	hallA := &domain.Hall{
		ExhibitionID: ex.ID,
		Name:         "Hall A",
		Bounds:       domain.Rect{X: 0, Y: 0, Width: 60, Height: 80},
	}
	hallB := &domain.Hall{
		ExhibitionID: ex.ID,
		Name:         "Hall B",
		Bounds:       domain.Rect{X: 60, Y: 0, Width: 60, Height: 80},
	}
	for _, h := range []*domain.Hall{hallA, hallB} {
		if err := halls.Create(ctx, h); err != nil {
			return err
		}
	}

	if err := halls.CreateFixture(ctx, &domain.Fixture{
		HallID: hallA.ID,
		Name:   "Main entrance",
		Type:   domain.FixtureEntrance,
		Bounds: domain.Rect{X: 0, Y: 35, Width: 4, Height: 10},
	}); err != nil {
		return err
	}

	seedStalls := []domain.Stall{
		{HallID: hallA.ID, Name: "A-01", StallType: "premium", RatePerSqm: 250,
			Status: domain.StallAvailable, Bounds: domain.Rect{X: 6, Y: 2, Width: 10, Height: 8}},
		{HallID: hallA.ID, Name: "A-02", StallType: "standard", RatePerSqm: 100,
			Status: domain.StallAvailable, Bounds: domain.Rect{X: 18, Y: 2, Width: 8, Height: 8}},
		{HallID: hallA.ID, Name: "A-03", StallType: "standard", RatePerSqm: 100,
			Status: domain.StallAvailable, Bounds: domain.Rect{X: 28, Y: 2, Width: 8, Height: 8}},
		{HallID: hallB.ID, Name: "B-01", StallType: "corner", RatePerSqm: 180,
			Status: domain.StallAvailable, Bounds: domain.Rect{X: 2, Y: 2, Width: 12, Height: 10}},
		{HallID: hallB.ID, Name: "B-02", StallType: "standard", RatePerSqm: 100,
			Status: domain.StallAvailable, Bounds: domain.Rect{X: 16, Y: 2, Width: 8, Height: 8}},
	}
	for i := range seedStalls {
		if err := stalls.Create(ctx, &seedStalls[i]); err != nil {
			return err
		}
	}

	log.Printf("seeded exhibition %q with %d halls and %d stalls", ex.Name, 2, len(seedStalls))
	return nil
}

func mustDSN() string {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	return dsn
}
