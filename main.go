package main

import (
	"fmt"
	"log"
	"os"

	"github.com/samandartukhtayev/user-registry/config"
	"github.com/samandartukhtayev/user-registry/models"
	"github.com/samandartukhtayev/user-registry/registry"
	"github.com/samandartukhtayev/user-registry/render"
)

func main() {
	fmt.Println("=== User Registry Demo ===")

	// Load configuration
	cfg := config.DefaultConfig()

	reg := registry.New()

	demonstrateInsert(reg)
	demonstrateOverwrite()

	// Render with the configured format, then with every structured format
	fmt.Printf("--- Rendering (%s) ---\n", cfg.Render.Format)
	renderWith(reg, cfg.Render)

	for _, format := range []render.Format{render.FormatJSON, render.FormatYAML} {
		fmt.Printf("\n--- Rendering (%s) ---\n", format)
		renderWith(reg, config.RenderConfig{Format: string(format), Indent: cfg.Render.Indent})
	}

	fmt.Println("\n=== Demo Complete ===")
}

func demonstrateInsert(reg *registry.UserRegistry) {
	fmt.Println("--- Insert Demonstration ---")

	users := []models.User{
		models.NewUser(1, "Alice").WithEmail("alice@example.com"),
		models.NewUser(2, "Bob"),
	}

	for _, user := range users {
		reg.Insert(user)
		fmt.Printf("✓ Inserted %s\n", user)
	}
	fmt.Printf("Registry holds %d users\n\n", reg.Len())
}

func demonstrateOverwrite() {
	fmt.Println("--- Overwrite Demonstration ---")

	reg := registry.New()
	reg.Insert(models.NewUser(1, "Alice"))
	reg.Insert(models.NewUser(1, "Bob"))

	fmt.Printf("After two inserts with id 1: %s\n\n", reg.Render())
}

func renderWith(reg *registry.UserRegistry, rc config.RenderConfig) {
	r, err := render.New(rc)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	if err := r.Write(os.Stdout, reg); err != nil {
		log.Fatalf("Failed to render registry: %v", err)
	}
}
