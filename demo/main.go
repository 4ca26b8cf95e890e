package main

import (
	"context"
	"demo/controllers"
	"demo/core"
	"demo/middlewares"
	"demo/repositories"
	"demo/services"
	"demo/utils"
	"log"
	"net/http"

	"github.com/corewire/godi/di"
	"github.com/joho/godotenv"
)

func main() {
	r := core.NewServerMuxRouter()
	container := di.NewContainer()
	defer container.Shutdown()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if err := di.RegisterInstance(container, "World"); err != nil {
		log.Fatalf("Failed to register greeting: %v", err)
	}

	if err := di.ApplyModules(container, repositoryModule(), serviceModule(), controllerModule()); err != nil {
		log.Fatalf("Failed to register dependencies: %v", err)
	}

	if err := container.Validate(); err != nil {
		log.Fatalf("Container validation failed: %v", err)
	}

	// TodoController is registered Scoped, so it can only be resolved within
	// an active scope; each scope below models one request's worth of
	// Scoped instances, sharing the Singleton TodoRepository underneath.
	apiScope := di.NewScope(container)
	todoController := di.MustResolveScoped[controllers.TodoController](apiScope)

	apiRouter := r.Group("api")
	if err := apiRouter.AddController(todoController, nil); err != nil {
		log.Fatalf("Failed to add controller to API router: %v", err)
	}

	reqScope := di.NewScope(container)
	todoController2 := di.MustResolveScoped[controllers.TodoController](reqScope)

	api2Router := r.Group("api2")
	if err := api2Router.AddController(todoController2, nil); err != nil {
		log.Fatalf("Failed to add controller to API2 router: %v", err)
	}

	dummy := di.MustResolve[services.DummyService](container, nil)
	dummy.DoSomething()

	middleware := core.Chain(
		middlewares.NormalizeTrailingSlashMiddleware,
		middlewares.LoggerMiddleware,
		middlewares.CorsMiddleware,
	)

	server := &http.Server{
		Addr:    ":8080",
		Handler: middleware(r.Handler()),
	}

	_ = utils.ShutdownHandler(func() {
		log.Println("Shutting down DI lifecycle contexts...")
		if err := apiScope.Close(); err != nil {
			log.Printf("Error closing api scope: %v", err)
		}
		if err := reqScope.Close(); err != nil {
			log.Printf("Error closing request scope: %v", err)
		}
		if errs := container.Shutdown(); len(errs) > 0 {
			log.Printf("Error during DI shutdown: %v", errs)
		}

		log.Println("Shutting down server...")
		if err := server.Shutdown(context.Background()); err != nil {
			log.Printf("Error during server shutdown: %v", err)
		}
	})

	log.Println("Starting server on http://localhost:8080")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// repositoryModule groups every repository registration the application
// needs, all Singleton: repositories hold the in-memory demo data and must
// be shared across every resolution.
func repositoryModule() *di.Module {
	return di.NewModule("repositories").
		Add(di.BindFunc[repositories.TodoRepository](di.Singleton, repositories.NewTodoRepository)).
		Add(di.BindFunc[repositories.OrderRepository](di.Singleton, repositories.NewOrderRepository)).
		Add(di.BindFunc[repositories.UserRepository](di.Singleton, repositories.NewUserRepository))
}

// serviceModule groups every service registration. TodoService is
// Transient since it holds no state of its own beyond the repository
// reference; HelloService/DummyService demonstrate a service depending on
// another service plus a plain registered value (the "World" greeting).
func serviceModule() *di.Module {
	return di.NewModule("services").
		Add(di.BindFunc[services.TodoService](di.Transient, services.NewTodoService)).
		Add(di.BindFunc[services.OrderService](di.Transient, services.NewOrderService)).
		Add(di.BindFunc[services.UserService](di.Transient, services.NewUserService)).
		Add(di.BindFunc[services.HelloService](di.Singleton, services.NewHelloService)).
		Add(di.BindFunc[services.DummyService](di.Transient, services.NewDummyService))
}

// controllerModule groups controller registrations. TodoController is
// Scoped so a fresh instance is built per lifecycle context (per request),
// while still sharing the Singleton repository underneath it.
func controllerModule() *di.Module {
	return di.NewModule("controllers").
		Add(di.BindFunc[controllers.TodoController](di.Scoped, controllers.NewTodoController))
}
