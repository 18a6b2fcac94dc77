package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/dyondem/callsheet/internal/handlers"
)

// Handlers bundles the section handlers wired in main.
type Handlers struct {
	Health    *handlers.HealthHandler
	Workspace *handlers.WorkspaceHandler
	Role      *handlers.RoleHandler
	People    *handlers.PeopleHandler
	Planner   *handlers.PlannerHandler
	Journal   *handlers.JournalHandler
	Stage     *handlers.StageHandler
	Project   *handlers.ProjectHandler
	Resource  *handlers.ResourceHandler
}

func Setup(app *fiber.App, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 120 req/min per IP. The dashboard is a
	// single local user; this only guards against runaway clients.
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Whole-document surface (export / import round-trip).
	api.Get("/workspace", h.Workspace.Get)
	api.Put("/workspace", h.Workspace.Replace)

	// Profile and roles
	api.Get("/profile", h.Role.GetProfile)
	api.Post("/profile", h.Role.SaveProfile)
	api.Put("/role", h.Role.SetActiveRole)
	api.Get("/roles", h.Role.ListCustomRoles)
	api.Post("/roles", h.Role.CreateCustomRole)
	api.Delete("/roles/:id", h.Role.DeleteCustomRole)

	// Employees, groups, contacts
	api.Get("/employees", h.People.ListEmployees)
	api.Post("/employees", h.People.CreateEmployee)
	api.Put("/employees/:id", h.People.UpdateEmployee)
	api.Delete("/employees/:id", h.People.DeleteEmployee)
	api.Get("/groups", h.People.ListGroups)
	api.Post("/groups", h.People.CreateGroup)
	api.Put("/groups/:id/members", h.People.SetGroupMembers)
	api.Delete("/groups/:id", h.People.DeleteGroup)
	api.Get("/contacts", h.People.ListContacts)
	api.Post("/contacts", h.People.CreateContact)
	api.Put("/contacts/:id", h.People.UpdateContact)
	api.Delete("/contacts/:id", h.People.DeleteContact)

	// Todos and meetings
	api.Get("/todos", h.Planner.ListTodos)
	api.Post("/todos", h.Planner.CreateTodo)
	api.Put("/todos/:id/status", h.Planner.SetTodoStatus)
	api.Delete("/todos/:id", h.Planner.DeleteTodo)
	api.Get("/meetings", h.Planner.ListMeetings)
	api.Get("/meetings/upcoming", h.Planner.UpcomingMeetings)
	api.Get("/meetings/past", h.Planner.PastMeetings)
	api.Post("/meetings", h.Planner.CreateMeeting)
	api.Put("/meetings/:id/reflection", h.Planner.UpdateReflection)
	api.Delete("/meetings/:id", h.Planner.DeleteMeeting)

	// Journal and metrics
	api.Get("/journal", h.Journal.ListEntries)
	api.Post("/journal", h.Journal.SaveEntry)
	api.Delete("/journal/:id", h.Journal.DeleteEntry)
	api.Get("/metrics", h.Journal.ListMetrics)
	api.Get("/metrics/averages", h.Journal.MetricAverages)

	// Productions, cast/crew, rehearsal reports
	api.Get("/productions", h.Stage.ListProductions)
	api.Post("/productions", h.Stage.CreateProduction)
	api.Delete("/productions/:id", h.Stage.DeleteProduction)
	api.Get("/productions/:id/castcrew", h.Stage.ListCastCrew)
	api.Post("/productions/:id/castcrew", h.Stage.AddCastCrew)
	api.Delete("/castcrew/:id", h.Stage.DeleteCastCrew)
	api.Get("/rehearsals", h.Stage.ListRehearsalReports)
	api.Post("/rehearsals", h.Stage.CreateRehearsalReport)
	api.Delete("/rehearsals/:id", h.Stage.DeleteRehearsalReport)

	// Project events
	api.Get("/projects", h.Project.List)
	api.Post("/projects", h.Project.Create)
	api.Put("/projects/:id/status", h.Project.SetStatus)
	api.Delete("/projects/:id", h.Project.Delete)

	// Resources
	api.Get("/resources", h.Resource.List)
	api.Get("/resources/favorites", h.Resource.Favorites)
	api.Get("/resources/categories", h.Resource.ByCategory)
	api.Post("/resources", h.Resource.Create)
	api.Put("/resources/:id/favorite", h.Resource.ToggleFavorite)
	api.Delete("/resources/:id", h.Resource.Delete)
}
