package api

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/stylematch/stylematch-backend/config"
	"github.com/stylematch/stylematch-backend/models"
	"github.com/stylematch/stylematch-backend/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// oauthStateCookie carries the per-request OAuth state between the login
// redirect and the callback, so the callback can reject forged requests.
const oauthStateCookie = "oauth_state"

func newOAuthState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func getOauthConfig() *oauth2.Config {
	return &oauth2.Config{
		RedirectURL:  config.GoogleRedirectURL,
		ClientID:     config.GoogleClientID,
		ClientSecret: config.GoogleClientSecret,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}
}

type googleUserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleLoginHandler handles the login request by redirecting to Google
func GoogleLoginHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Google Login API]")

	state, err := newOAuthState()
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to generate state: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to start login", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/auth/google",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	oauthConfig := getOauthConfig()
	url := oauthConfig.AuthCodeURL(state)

	utils.AddToLogMessage(&logMessageBuilder, "Redirecting to Google Auth")
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GoogleCallbackHandler handles the callback from Google. It exchanges the
// code for an access token, fetches the user's profile, upserts the user
// in Mongo and issues a JWT for the app.
func GoogleCallbackHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Google Callback API]")

	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || cookie.Value == "" || r.FormValue("state") != cookie.Value {
		utils.AddToLogMessage(&logMessageBuilder, "Invalid state")
		utils.RespondError(w, &logMessageBuilder, "State invalid", http.StatusBadRequest)
		return
	}
	// state is single-use
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    "",
		Path:     "/auth/google",
		MaxAge:   -1,
		HttpOnly: true,
	})

	code := r.FormValue("code")
	if code == "" {
		utils.AddToLogMessage(&logMessageBuilder, "Code not found in callback")
		utils.RespondError(w, &logMessageBuilder, "Code not found", http.StatusBadRequest)
		return
	}

	oauthConfig := getOauthConfig()
	token, err := oauthConfig.Exchange(context.Background(), code)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to exchange token: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to exchange token", http.StatusInternalServerError)
		return
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to get user info: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to get user info", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || info.Email == "" {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to decode user info: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to read user info", http.StatusInternalServerError)
		return
	}

	collection := utils.GetCollection(utils.DatabaseName, "users")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err = collection.FindOne(ctx, bson.M{"email": info.Email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		user = models.User{
			Name:      info.Name,
			Email:     info.Email,
			Status:    "active",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		res, insertErr := collection.InsertOne(ctx, user)
		if insertErr != nil {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to create user: %v", insertErr))
			utils.RespondError(w, &logMessageBuilder, "Failed to create user", http.StatusInternalServerError)
			return
		}
		user.ID = res.InsertedID.(primitive.ObjectID)
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Created new user via Google: %s", info.Email))
	} else if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Database error", http.StatusInternalServerError)
		return
	}

	appToken, err := utils.GenerateToken(user.ID.Hex())
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to generate token: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Successfully authenticated via Google")
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   appToken,
		"user":    user,
	})
}
