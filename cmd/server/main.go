package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"classadmin/internal/database"
	"classadmin/internal/handler"
	middleware "classadmin/internal/midlleware"
	"classadmin/internal/repository"
	"classadmin/internal/session"
)

func main() {
	// .env is optional, env vars win either way
	if err := godotenv.Load(); err == nil {
		log.Println(".env loaded")
	}

	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("failed to init database: %v", err)
	}
	defer database.CloseDB(db)

	migrationsPath := getEnv("MIGRATIONS_PATH", "migrations")
	if err := database.RunMigrations(db, migrationsPath); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	classroomRepo := repository.NewClassroomRepository(db)

	sessions := session.NewManager(getEnv("SESSION_SECRET", "a-very-secret-key"))
	auth := middleware.NewAuth(sessions, userRepo)

	registrationHandler := handler.NewRegistrationHandler(userRepo, auth)
	loginHandler := handler.NewLoginHandler(userRepo, sessions, auth)
	homeHandler := handler.NewHomeHandler(auth)
	classroomHandler := handler.NewClassroomHandler(classroomRepo, auth)

	r := mux.NewRouter()

	r.HandleFunc("/register", registrationHandler.RegisterPage).Methods(http.MethodGet)
	r.HandleFunc("/register", registrationHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", loginHandler.LoginPage).Methods(http.MethodGet)
	r.HandleFunc("/login", loginHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", loginHandler.Logout).Methods(http.MethodGet)

	r.HandleFunc("/", homeHandler.HomePage).Methods(http.MethodGet)

	r.HandleFunc("/classrooms", classroomHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/classrooms/create", classroomHandler.CreatePage).Methods(http.MethodGet)
	r.HandleFunc("/classrooms/create", classroomHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/classrooms/{id:[0-9]+}/edit", classroomHandler.EditPage).Methods(http.MethodGet)
	r.HandleFunc("/classrooms/{id:[0-9]+}/edit", classroomHandler.Edit).Methods(http.MethodPost)
	r.HandleFunc("/classrooms/{id:[0-9]+}/delete", classroomHandler.Delete).Methods(http.MethodPost)

	port := getEnv("PORT", "8080")

	log.Printf("server listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Printf("server stopped: %v", err)
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
