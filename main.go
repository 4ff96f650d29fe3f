package main

import (
	"context"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"

	apifootball "github.com/nabdalmalaeb/score-sync/repos/apifootball"
	resend "github.com/nabdalmalaeb/score-sync/repos/resend"

	auth "github.com/nabdalmalaeb/score-sync/pkg/auth"
	config "github.com/nabdalmalaeb/score-sync/pkg/config"

	admin "github.com/nabdalmalaeb/score-sync/services/admin"
	favorites "github.com/nabdalmalaeb/score-sync/services/favorites"
	matches "github.com/nabdalmalaeb/score-sync/services/matches"
	news "github.com/nabdalmalaeb/score-sync/services/news"
	predictions "github.com/nabdalmalaeb/score-sync/services/predictions"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	credentialsOption := option.WithCredentialsJSON([]byte(cfg.FirebaseCredentialsJSON))

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProjectID, credentialsOption)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	firebaseApp, err := firebase.NewApp(ctx, nil, credentialsOption)
	if err != nil {
		log.Fatalf("error initializing app: %v\n", err)
	}

	apiFootballService := apifootball.NewService(cfg.APIFootballHost, cfg.APIFootballKey)
	resendService := resend.NewService(firestoreClient, cfg.ResendKey, cfg.HostURL, cfg.ReportRecipient)

	adminService := admin.NewAdminService(firestoreClient, firebaseApp, resendService)
	predictionsService := predictions.NewPredictionsService(firestoreClient, firebaseApp, apiFootballService, resendService, cfg.LeaderboardDisplayLimit)
	favoritesService := favorites.NewFavoritesService(firestoreClient, firebaseApp)
	newsService := news.NewNewsService(firestoreClient, firebaseApp)
	matchesService := matches.NewMatchesService(firestoreClient, firebaseApp, apiFootballService, adminService, matches.Options{
		CacheTTL:       time.Duration(cfg.MatchCacheTTLSeconds) * time.Second,
		CacheEntries:   32,
		RefreshEvery:   time.Duration(cfg.LiveRefreshSeconds) * time.Second,
		ActivityWindow: time.Duration(cfg.LiveActivityWindowSecs) * time.Second,
	})

	matchesService.StartLiveRefresh()
	defer matchesService.StopLiveRefresh()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.CorsHosts, ",")
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Access-Control-Allow-Origin"}

	router := gin.Default()
	router.Use(cors.New(corsConfig))

	matchesRouter := router.Group("/matches/v1")

	newsRouter := router.Group("/news/v1")

	publicAdminRouter := router.Group("/customize/v1")

	predictionsRouter := router.Group("/predictions/v1")
	predictionsRouter.Use(auth.AuthMiddleware(firebaseApp))

	favoritesRouter := router.Group("/favorites/v1")
	favoritesRouter.Use(auth.AuthMiddleware(firebaseApp))

	accessRouter := router.Group("/access/v1")
	accessRouter.Use(auth.AuthMiddleware(firebaseApp))

	adminRouter := router.Group("/admin/v1")
	adminRouter.Use(auth.AuthMiddleware(firebaseApp))
	adminRouter.Use(auth.AdminMiddleware(firestoreClient))

	matches.NewHTTPHandler(matches.HTTPOptions{
		Service: matchesService,
		Router:  matchesRouter,
	})

	news.NewHTTPHandler(news.HTTPOptions{
		Service: newsService,
		Router:  newsRouter,
	})

	predictions.NewHTTPHandler(predictions.HTTPOptions{
		Service: predictionsService,
		Router:  predictionsRouter,
	})

	favorites.NewHTTPHandler(favorites.HTTPOptions{
		Service: favoritesService,
		Router:  favoritesRouter,
	})

	admin.NewHTTPHandler(admin.HTTPOptions{
		Service:      adminService,
		AdminRouter:  adminRouter,
		AccessRouter: accessRouter,
		PublicRouter: publicAdminRouter,
	})

	predictions.NewAdminHTTPHandler(predictions.HTTPOptions{
		Service: predictionsService,
		Router:  adminRouter,
	})

	matches.NewAdminHTTPHandler(matches.HTTPOptions{
		Service: matchesService,
		Router:  adminRouter,
	})

	news.NewAdminHTTPHandler(news.HTTPOptions{
		Service: newsService,
		Router:  adminRouter,
	})

	log.Fatal(router.Run(":" + cfg.Port))
}
