package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// newRouter builds the engine; c.ClientIP only honours X-Forwarded-For from
// the listed proxies.
func newRouter(trustedProxies []string) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, err
	}
	r.Use(gin.Recovery())
	return r, nil
}

func (app *application) routes() (http.Handler, error) {
	r, err := newRouter(app.Config.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})
	r.Use(app.CORSMiddleware())

	// raw catalog files, same paths the browser client fetches
	r.StaticFile("/"+app.Config.Catalog.QuestionsFile, app.Config.QuestionsPath())
	r.StaticFile("/"+app.Config.Catalog.InterviewsFile, app.Config.InterviewsPath())

	r.POST("/evaluate-question/", app.RateLimitMiddleware(), app.Handler.EvaluateQuestion)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/login", app.Handler.Login)
	}

	protected := v1.Group("/")
	protected.Use(app.AuthMiddleware())
	{
		protected.POST("/logout", app.Handler.Logout)

		protected.GET("/questions", app.Handler.ListQuestions)
		protected.GET("/keywords", app.Handler.ListKeywords)

		protected.GET("/interviews", app.Handler.ListInterviews)
		protected.GET("/interviews/filters", app.Handler.InterviewFilters)

		protected.GET("/settings/token", app.Handler.GetToken)
		protected.PUT("/settings/token", app.Handler.SetToken)
		protected.DELETE("/settings/token", app.Handler.ClearToken)

		// mock interview routes
		protected.POST("/mock/start", app.Handler.StartMock)
		protected.GET("/mock", app.Handler.GetMock)
		protected.PUT("/mock/scores/:question_id", app.Handler.UpdateScore)
		protected.POST("/mock/scores/:question_id/audio", app.RateLimitMiddleware(), app.Handler.SubmitAudio)
		protected.POST("/mock/end", app.Handler.EndMock)
		protected.GET("/mock/results", app.Handler.GetResults)
		protected.DELETE("/mock/results", app.Handler.DismissResults)

		protected.POST("/agent/solve", app.Handler.SolveProblem)
	}

	return r, nil
}
