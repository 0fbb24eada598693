// @title GlycoGuide API
// @description REST API for the GlycoGuide diabetes self-management app
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/Glycoguide2025/glycoguide-app-sub002/internal/api"
	"github.com/Glycoguide2025/glycoguide-app-sub002/internal/repository"
	"github.com/Glycoguide2025/glycoguide-app-sub002/internal/service"
	"github.com/Glycoguide2025/glycoguide-app-sub002/pkg/config"
	jwtservice "github.com/Glycoguide2025/glycoguide-app-sub002/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	userService := service.NewUserService(repository.NewUsersRepo(&dbCfg))
	activityService := service.NewWeeklyActivityService(repository.NewWeeklyActivityRepo(&dbCfg))
	readingsService := service.NewReadingsService(
		repository.NewGlucoseRepo(&dbCfg),
		repository.NewBloodPressureRepo(&dbCfg),
	)
	wearablesService := service.NewWearablesService(repository.NewWearableSamplesRepo(&dbCfg))
	serv := api.New(&api.ServicesList{
		UserService:      userService,
		ActivityService:  activityService,
		ReadingsService:  readingsService,
		WearablesService: wearablesService,
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
