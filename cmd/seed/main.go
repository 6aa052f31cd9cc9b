package main

import (
	"flag"
	"fmt"
	"time"

	"shelf-life/internal/entity"
	"shelf-life/internal/repo/persistent"
	"shelf-life/pkg/config"
	"shelf-life/pkg/database"
	"shelf-life/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

func intPtr(n int) *int { return &n }

func main() {
	var password string
	flag.StringVar(&password, "password", "password123", "password for the demo user")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	userRepo := persistent.NewUserRepository(db)
	workRepo := persistent.NewWorkRepository(db)
	sessionRepo := persistent.NewSessionRepository(db)
	reviewRepo := persistent.NewReviewRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}

	now := time.Now().UTC()
	user := &entity.User{
		Username:     "demo",
		Email:        "demo@example.com",
		PasswordHash: string(hash),
		DisplayName:  "Demo Reader",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(user); err != nil {
		log.Error("Failed to create demo user (already seeded?): %v", err)
		return
	}
	log.Info("Created user %s (%s)", user.Username, user.ID)

	works := []*entity.Work{
		{
			UserID:     user.ID,
			Title:      "The Left Hand of Darkness",
			Type:       entity.WorkTypeBook,
			Creator:    "Ursula K. Le Guin",
			Genre:      "Science Fiction",
			Status:     entity.StatusInProgress,
			TotalUnits: intPtr(304),
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			UserID:    user.ID,
			Title:     "Spirited Away",
			Type:      entity.WorkTypeMovie,
			Creator:   "Hayao Miyazaki",
			Genre:     "Fantasy",
			Status:    entity.StatusFinished,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			UserID:    user.ID,
			Title:     "Outer Wilds",
			Type:      entity.WorkTypeGame,
			Genre:     "Exploration",
			Status:    entity.StatusToExplore,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for _, w := range works {
		if err := workRepo.Create(w); err != nil {
			log.Error("Failed to create work %q: %v", w.Title, err)
			return
		}
		log.Info("Created work %q (%s)", w.Title, w.ID)
	}

	session := &entity.Session{
		UserID:         user.ID,
		WorkID:         works[0].ID,
		StartedAt:      now.Add(-2 * time.Hour),
		Minutes:        intPtr(45),
		UnitsCompleted: intPtr(30),
		Note:           "Chapters 1-3",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := sessionRepo.Create(session); err != nil {
		log.Error("Failed to create session: %v", err)
		return
	}
	log.Info("Created session %s", session.ID)

	review := &entity.Review{
		UserID:    user.ID,
		WorkID:    works[1].ID,
		Rating:    5,
		Title:     "A masterpiece",
		Body:      "Rewatched for the third time, still finding new details.",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := reviewRepo.Create(review); err != nil {
		log.Error("Failed to create review: %v", err)
		return
	}
	log.Info("Created review %s", review.ID)

	log.Info("Seed complete: login as demo / %s", password)
}
