package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamaho/matchpoint/internal/models"
)

func seedMatches(env *testEnv, creatorID, playerID uint) (created models.Match, playing models.Match, other models.Match) {
	created = models.Match{
		Name:          "Backgammon",
		GameType:      "BACKGAMMON",
		CreatorUserID: creatorID,
		Teams:         []models.Team{{Name: "sweetie"}, {Name: "bubba"}},
	}
	require.NoError(env.T, env.DB.Create(&created).Error)

	playing = models.Match{
		Name:          "Golf with Manny",
		GameType:      "GOLF",
		CreatorUserID: playerID,
		Teams: []models.Team{
			{Name: "manny", Players: []models.Player{{UserID: creatorID}}},
		},
	}
	require.NoError(env.T, env.DB.Create(&playing).Error)

	other = models.Match{
		Name:          "Chess night",
		GameType:      "CHESS",
		CreatorUserID: playerID,
	}
	require.NoError(env.T, env.DB.Create(&other).Error)

	return created, playing, other
}

func TestMeMatches(t *testing.T) {
	env := newTestEnv(t)

	me := env.signup("adamaho", "adamaho@prisma.io", "brazil")
	them := env.signup("bryannegoad", "bryannegoad@prisma.io", "brazil")
	myID := uint(me["user"].(map[string]any)["user_id"].(float64))
	theirID := uint(them["user"].(map[string]any)["user_id"].(float64))

	created, playing, _ := seedMatches(env, myID, theirID)

	rec := env.request(http.MethodGet, "/me/matches.json", nil, me["access_token"].(string))
	require.Equal(t, http.StatusOK, rec.Code)

	matches, ok := env.decode(rec)["matches"].([]any)
	require.True(t, ok)
	require.Len(t, matches, 2, "creator or player only, never other users' matches")

	names := map[string]bool{}
	for _, m := range matches {
		names[m.(map[string]any)["name"].(string)] = true
	}
	require.True(t, names[created.Name])
	require.True(t, names[playing.Name])
	require.False(t, names["Chess night"])
}

func TestMeMatchesRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodGet, "/me/matches.json", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.request(http.MethodGet, "/me/matches.json", nil, "garbage-token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOneMatch(t *testing.T) {
	env := newTestEnv(t)

	me := env.signup("adamaho", "adamaho@prisma.io", "brazil")
	access := me["access_token"].(string)
	myID := uint(me["user"].(map[string]any)["user_id"].(float64))

	match := models.Match{Name: "Backgammon", GameType: "BACKGAMMON", CreatorUserID: myID}
	require.NoError(t, env.DB.Create(&match).Error)

	rec := env.request(http.MethodGet, "/matches/1.json", nil, access)
	require.Equal(t, http.StatusOK, rec.Code)
	got, ok := env.decode(rec)["match"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Backgammon", got["name"])

	rec = env.request(http.MethodGet, "/matches/999.json", nil, access)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, CodeNotFound, env.decode(rec)["error_code"])
}

func TestSearchMatchesValidation(t *testing.T) {
	env := newTestEnv(t)

	me := env.signup("adamaho", "adamaho@prisma.io", "brazil")
	access := me["access_token"].(string)

	rec := env.request(http.MethodGet, "/matches/search.json", nil, access)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, CodeValidationError, env.decode(rec)["error_code"])
}

func TestUpdateMe(t *testing.T) {
	env := newTestEnv(t)

	me := env.signup("adamaho", "adamaho@prisma.io", "brazil")
	access := me["access_token"].(string)

	rec := env.request(http.MethodPut, "/users/me", map[string]string{
		"username":    "newname",
		"avatarEmoji": "🎯",
	}, access)
	require.Equal(t, http.StatusOK, rec.Code)

	body := env.decode(rec)
	require.Equal(t, "newname", body["username"])
	require.Equal(t, "🎯", body["avatar_emoji"])
	require.Equal(t, "adamaho@prisma.io", body["email"], "absent fields stay untouched")
	require.NotContains(t, body, "password")

	rec = env.request(http.MethodPut, "/users/me", map[string]string{"username": "x"}, access)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.request(http.MethodPut, "/users/me", map[string]string{"username": "newname"}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
