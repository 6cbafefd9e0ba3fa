package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/adamaho/matchpoint/internal/config"
	"github.com/adamaho/matchpoint/internal/db"
	"github.com/adamaho/matchpoint/internal/es"
	"github.com/adamaho/matchpoint/internal/hash"
	"github.com/adamaho/matchpoint/internal/models"
)

var seedUsers = []struct {
	Username string
	Email    string
	Password string
}{
	{"adamaho", "adamaho@prisma.io", "brazil"},
	{"bryannegoad", "bryannegoad@prisma.io", "brazil"},
	{"ruthaho", "ruthaho@prisma.io", "brazil"},
}

func main() {
	ctx := context.Background()

	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	database, err := db.Open(ctx, configuration)
	if err != nil {
		log.Fatalf("db init failed: %v", err)
	}

	log.Println("seeding users")
	users := make([]models.User, 0, len(seedUsers))
	for _, u := range seedUsers {
		pwHash, err := hash.HashPassword(u.Password)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		user := models.User{Username: u.Username, Email: u.Email, Password: pwHash}
		if err := database.WithContext(ctx).Create(&user).Error; err != nil {
			log.Fatalf("create user %s: %v", u.Username, err)
		}
		users = append(users, user)
	}

	log.Println("seeding matches")
	matches := []models.Match{
		{
			Name:          "Backgammon",
			GameType:      "BACKGAMMON",
			Description:   "hello what is going on with you?",
			CreatorUserID: users[0].UserID,
			Admins:        []models.MatchAdmin{{UserID: users[0].UserID}},
			Teams: []models.Team{
				{Name: "sweetie"},
				{Name: "bubba"},
			},
		},
		{
			Name:          "Golf with Manny",
			GameType:      "GOLF",
			CreatorUserID: users[1].UserID,
			Admins:        []models.MatchAdmin{{UserID: users[1].UserID}},
			Teams: []models.Team{
				{Name: "manny", Players: []models.Player{{UserID: users[0].UserID}}},
				{Name: "aho", Players: []models.Player{{UserID: users[1].UserID}}},
			},
		},
	}
	for i := range matches {
		if err := database.WithContext(ctx).Create(&matches[i]).Error; err != nil {
			log.Fatalf("create match %s: %v", matches[i].Name, err)
		}
	}

	if err := indexMatches(ctx, configuration, matches); err != nil {
		log.Fatalf("index matches: %v", err)
	}

	log.Println("seeding finished")
}

// indexMatches pushes the seeded matches into the search index so
// /matches/search.json has data to serve. Skipped when ES is not configured.
func indexMatches(ctx context.Context, cfg *config.Config, matches []models.Match) error {
	client, err := es.NewClient(cfg)
	if err != nil {
		return err
	}
	if client == nil {
		log.Println("ES_URL not set, skipping search indexing")
		return nil
	}

	for _, m := range matches {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(m); err != nil {
			return err
		}
		res, err := client.Index(
			es.MatchIndex,
			&buf,
			client.Index.WithContext(ctx),
			client.Index.WithDocumentID(fmt.Sprint(m.MatchID)),
		)
		if err != nil {
			return err
		}
		res.Body.Close()
		if res.IsError() {
			return fmt.Errorf("index match %d: %s", m.MatchID, res.Status())
		}
	}
	log.Printf("indexed %d matches", len(matches))
	return nil
}
