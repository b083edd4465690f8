package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/stylematch/stylematch-backend/api"
	"github.com/stylematch/stylematch-backend/clip"
	"github.com/stylematch/stylematch-backend/config"
	"github.com/stylematch/stylematch-backend/stylist"
	"github.com/stylematch/stylematch-backend/utils"
)

func main() {
	config.LoadConfig()

	// Initialize MongoDB
	if err := utils.ConnectMongo(config.MongoURI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// Initialize S3 for image storage
	if err := utils.InitS3(); err != nil {
		log.Fatalf("Failed to initialize S3: %v", err)
	}

	// CLIP embedding service
	embedder, err := clip.NewClient(config.ClipEndpoint)
	if err != nil {
		log.Fatalf("Failed to create CLIP client: %v", err)
	}

	// Outfit generator with the color compatibility oracle. An empty
	// COLOR_API_ENDPOINT means static color tables only.
	oracle := stylist.NewOracle(stylist.NewPaletteClient(config.ColorAPIEndpoint))
	generator := stylist.NewGenerator(oracle)

	api.Configure(embedder, generator)

	// CORS Middleware
	corsMiddleware := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next(w, r)
		}
	}

	// Auth Routes
	http.HandleFunc("/auth/signup", corsMiddleware(api.SignupHandler))
	http.HandleFunc("/auth/verify-otp", corsMiddleware(api.VerifyOTPHandler))
	http.HandleFunc("/auth/login", corsMiddleware(api.LoginHandler))
	http.HandleFunc("/auth/forgot-password", corsMiddleware(api.ForgotPasswordHandler))
	http.HandleFunc("/auth/reset-password", corsMiddleware(api.ResetPasswordHandler))
	http.HandleFunc("/auth/google/login", corsMiddleware(api.GoogleLoginHandler))
	http.HandleFunc("/auth/google/callback", corsMiddleware(api.GoogleCallbackHandler))

	// Protected Routes
	http.HandleFunc("/recommend", corsMiddleware(api.AuthMiddleware(api.RecommendHandler)))
	http.HandleFunc("/wardrobe/upload", corsMiddleware(api.AuthMiddleware(api.WardrobeUploadHandler)))
	http.HandleFunc("/wardrobe/list", corsMiddleware(api.AuthMiddleware(api.WardrobeListHandler)))
	http.HandleFunc("/wardrobe/delete", corsMiddleware(api.AuthMiddleware(api.WardrobeDeleteHandler)))
	http.HandleFunc("/outfits/generate", corsMiddleware(api.AuthMiddleware(api.OutfitGenerateHandler)))
	http.HandleFunc("/shop/search", corsMiddleware(api.AuthMiddleware(api.ShopSearchHandler)))

	port := config.Port
	fmt.Printf("Server starting on port %s...\n", port)
	if err := http.ListenAndServe(":"+port, utils.LatencyMiddleware(http.DefaultServeMux)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
