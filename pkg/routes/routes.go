package pkg

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/datachef-lab/academic360-sub015/internal/config"
	"github.com/datachef-lab/academic360-sub015/internal/exams"
	"github.com/datachef-lab/academic360-sub015/internal/notification"
	"github.com/datachef-lab/academic360-sub015/internal/population"
	"github.com/datachef-lab/academic360-sub015/internal/rooms"
	"github.com/datachef-lab/academic360-sub015/internal/seating"
	"github.com/datachef-lab/academic360-sub015/pkg/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// CustomValidator adapts go-playground/validator to echo's Validator hook so
// handlers can call c.Validate on bound requests.
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var EchoModules = fx.Module("echo",
	fx.Provide(NewEchoServer),
	fx.Provide(config.NewLogger),
	fx.Provide(config.NewMongoDBConfig),
	fx.Provide(config.NewMongoDBClient),
	fx.Provide(config.NewResendConfig),
	fx.Provide(config.NewEmailService),
	fx.Provide(population.NewLogProgressSink),
	fx.Provide(population.NewPopulationRepository),
	fx.Provide(population.NewPopulationService),
	fx.Provide(population.NewPopulationHandler),
	fx.Provide(rooms.NewRoomRepository),
	fx.Provide(rooms.NewRoomService),
	fx.Provide(rooms.NewRoomHandler),
	fx.Provide(exams.NewExamRepository),
	fx.Provide(exams.NewExamService),
	fx.Provide(exams.NewExamHandler),
	fx.Provide(seating.NewSeatingService),
	fx.Provide(seating.NewSeatingHandler),
	fx.Provide(notification.NewNotificationRepository),
	fx.Provide(notification.NewNotificationService),
	fx.Provide(notification.NewNotificationHandler),
	fx.Invoke(RegisterRoutes))

func NewEchoServer(lc fx.Lifecycle) *echo.Echo {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"http://localhost:5173"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Server running on http://localhost:" + port)
				if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
					log.Fatal("Failed to start the server:", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("shutting down the server ...")
			return e.Shutdown(ctx)
		},
	})
	return e
}

func RegisterRoutes(
	e *echo.Echo,
	populationHandler *population.PopulationHandler,
	roomHandler *rooms.RoomHandler,
	examHandler *exams.ExamHandler,
	seatingHandler *seating.SeatingHandler,
	notificationHandler *notification.NotificationHandler,
) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")
	api.Use(middleware.JWTMiddleware)

	api.POST("/students/count", populationHandler.CountStudents)
	api.POST("/students/count-breakdown", populationHandler.CountStudentsBreakdown)
	api.GET("/rooms", roomHandler.ListRooms)
	api.POST("/rooms/eligible", roomHandler.EligibleRooms)
	api.POST("/exams/check-duplicate", examHandler.CheckDuplicate)
	api.POST("/students/seats", seatingHandler.GetStudentsWithSeats)
	api.POST("/notifications/seats", notificationHandler.SendSeatNotices)
}
