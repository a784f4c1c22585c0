// Package web serves the server-rendered frontend: home, login, register and
// the goal dashboard. It holds no database connection; all state lives behind
// the REST API, reached through the apiclient with the session cookie as the
// credential source.
package web

import (
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"lifegoals/internal/session"
	"lifegoals/pkg/apiclient"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Handler serves the server-rendered frontend
type Handler struct {
	api      *apiclient.Client
	sessions *session.Store
}

// NewHandler creates a new frontend Handler
func NewHandler(api *apiclient.Client, sessions *session.Store) *Handler {
	return &Handler{
		api:      api,
		sessions: sessions,
	}
}

// Register mounts the frontend routes on a Gin engine
func (h *Handler) Register(r *gin.Engine) {
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.tmpl")))

	r.GET("/", h.Home)
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.GET("/register", h.RegisterPage)
	r.POST("/register", h.RegisterSubmit)
	r.POST("/logout", h.Logout)
	r.GET("/dashboard", h.Dashboard)
	r.POST("/goals", h.CreateGoal)
	r.POST("/goals/:id", h.UpdateGoal)
	r.POST("/goals/:id/toggle", h.ToggleGoal)
	r.POST("/goals/:id/delete", h.DeleteGoal)
}

func (h *Handler) session(c *gin.Context) *session.Session {
	return h.sessions.Bind(c.Writer, c.Request)
}

// client binds the shared API client to the request's session so the bearer
// token is read from the cookie on every outgoing call.
func (h *Handler) client(sess *session.Session) *apiclient.Client {
	return h.api.WithCredentials(sess)
}

// Home renders the landing page
// GET /
func (h *Handler) Home(c *gin.Context) {
	sess := h.session(c)
	c.HTML(http.StatusOK, "home.tmpl", gin.H{
		"User": sess.User(),
	})
}

// LoginPage renders the sign-in form
// GET /login
func (h *Handler) LoginPage(c *gin.Context) {
	sess := h.session(c)
	if sess.IsAuthenticated() {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.tmpl", gin.H{"Error": "", "Email": ""})
}

// Login submits credentials and establishes a session
// POST /login
func (h *Handler) Login(c *gin.Context) {
	sess := h.session(c)
	email := c.PostForm("email")
	password := c.PostForm("password")

	resp, err := h.client(sess).Login(c.Request.Context(), email, password)
	if err != nil {
		// Prior session state stays untouched on a failed login.
		log.Printf("[WARN] login failed for %s: %v", email, err)
		c.HTML(http.StatusOK, "login.tmpl", gin.H{
			"Error": errorMessage(err, "Failed to login"),
			"Email": email,
		})
		return
	}

	if err := sess.SetSession(resp.Token, resp.User); err != nil {
		log.Printf("[WARN] saving session: %v", err)
		c.HTML(http.StatusOK, "login.tmpl", gin.H{
			"Error": "Failed to login",
			"Email": email,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// RegisterPage renders the account creation form
// GET /register
func (h *Handler) RegisterPage(c *gin.Context) {
	sess := h.session(c)
	if sess.IsAuthenticated() {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "register.tmpl", gin.H{"Error": "", "Name": "", "Email": ""})
}

// RegisterSubmit creates an account and establishes a session
// POST /register
func (h *Handler) RegisterSubmit(c *gin.Context) {
	sess := h.session(c)
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")

	resp, err := h.client(sess).Register(c.Request.Context(), name, email, password)
	if err != nil {
		log.Printf("[WARN] registration failed for %s: %v", email, err)
		c.HTML(http.StatusOK, "register.tmpl", gin.H{
			"Error": errorMessage(err, "Failed to register"),
			"Name":  name,
			"Email": email,
		})
		return
	}

	if err := sess.SetSession(resp.Token, resp.User); err != nil {
		log.Printf("[WARN] saving session: %v", err)
		c.HTML(http.StatusOK, "register.tmpl", gin.H{
			"Error": "Failed to register",
			"Name":  name,
			"Email": email,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout clears the session unconditionally
// POST /logout
func (h *Handler) Logout(c *gin.Context) {
	sess := h.session(c)
	if err := sess.Clear(); err != nil {
		log.Printf("[WARN] clearing session: %v", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Dashboard fetches the full goal collection and renders it grouped by
// completion state
// GET /dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	sess := h.session(c)
	if !sess.IsAuthenticated() {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	goals, err := h.client(sess).ListGoals(c.Request.Context())
	if err != nil {
		if errors.Is(err, apiclient.ErrSessionExpired) {
			// The client already cleared the session; no visible error.
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		log.Printf("[WARN] fetching goals: %v", err)
		h.renderDashboard(c, sess, nil, "Failed to fetch goals")
		return
	}

	h.renderDashboard(c, sess, goals, "")
}

// CreateGoal creates a goal, then reloads the dashboard
// POST /goals
func (h *Handler) CreateGoal(c *gin.Context) {
	sess := h.session(c)
	if !sess.IsAuthenticated() {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	req := apiclient.CreateGoalRequest{
		Title:       strings.TrimSpace(c.PostForm("title")),
		Description: c.PostForm("description"),
		Completed:   c.PostForm("completed") != "",
	}

	if _, err := h.client(sess).CreateGoal(c.Request.Context(), req); err != nil {
		h.mutationFailed(c, sess, err, "Failed to create goal")
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// UpdateGoal applies an edit-form submission to a goal, then reloads the
// dashboard
// POST /goals/:id
func (h *Handler) UpdateGoal(c *gin.Context) {
	sess := h.session(c)
	if !sess.IsAuthenticated() {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	description := c.PostForm("description")
	completed := c.PostForm("completed") != ""
	req := apiclient.UpdateGoalRequest{
		Title:       &title,
		Description: &description,
		Completed:   &completed,
	}

	if _, err := h.client(sess).UpdateGoal(c.Request.Context(), c.Param("id"), req); err != nil {
		h.mutationFailed(c, sess, err, "Failed to update goal")
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// ToggleGoal flips a goal's completion flag, then reloads the dashboard
// POST /goals/:id/toggle
func (h *Handler) ToggleGoal(c *gin.Context) {
	sess := h.session(c)
	if !sess.IsAuthenticated() {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	completed := c.PostForm("completed") == "true"
	req := apiclient.UpdateGoalRequest{Completed: &completed}

	if _, err := h.client(sess).UpdateGoal(c.Request.Context(), c.Param("id"), req); err != nil {
		h.mutationFailed(c, sess, err, "Failed to update goal")
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// DeleteGoal removes a goal, then reloads the dashboard
// POST /goals/:id/delete
func (h *Handler) DeleteGoal(c *gin.Context) {
	sess := h.session(c)
	if !sess.IsAuthenticated() {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if err := h.client(sess).DeleteGoal(c.Request.Context(), c.Param("id")); err != nil {
		h.mutationFailed(c, sess, err, "Failed to delete goal")
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// mutationFailed renders the dashboard with a visible error and the current
// goal list intact. Session expiry redirects instead, the client wrapper has
// already cleared the cookie.
func (h *Handler) mutationFailed(c *gin.Context, sess *session.Session, err error, fallback string) {
	if errors.Is(err, apiclient.ErrSessionExpired) {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	log.Printf("[WARN] %s: %v", fallback, err)

	goals, listErr := h.client(sess).ListGoals(c.Request.Context())
	if errors.Is(listErr, apiclient.ErrSessionExpired) {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	if listErr != nil {
		log.Printf("[WARN] fetching goals: %v", listErr)
	}

	h.renderDashboard(c, sess, goals, errorMessage(err, fallback))
}

func (h *Handler) renderDashboard(c *gin.Context, sess *session.Session, goals []apiclient.Goal, errMsg string) {
	inProgress, completed := Partition(goals)

	showForm := c.Query("new") != ""
	var editGoal *apiclient.Goal
	if editID := c.Query("edit"); editID != "" {
		for i := range goals {
			if goals[i].ID == editID {
				editGoal = &goals[i]
				showForm = true
				break
			}
		}
	}

	c.HTML(http.StatusOK, "dashboard.tmpl", gin.H{
		"User":           sess.User(),
		"Greeting":       Greeting(time.Now()),
		"Goals":          goals,
		"InProgress":     inProgress,
		"Completed":      completed,
		"Total":          len(goals),
		"CompletionRate": CompletionRate(goals),
		"Error":          errMsg,
		"ShowForm":       showForm,
		"EditGoal":       editGoal,
	})
}

// errorMessage prefers the server-provided message when one exists
func errorMessage(err error, fallback string) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
