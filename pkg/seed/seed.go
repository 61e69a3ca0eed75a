// Package seed loads the demo dataset on an empty database so a fresh
// deployment has content to browse.
package seed

import (
	"log"

	authdomain "blogapp-backend/internal/auth/domain"
	authrepo "blogapp-backend/internal/auth/repository"
	blogdomain "blogapp-backend/internal/blog/domain"
	blogrepo "blogapp-backend/internal/blog/repository"

	"gorm.io/gorm"
)

type demoUser struct {
	username  string
	password  string
	firstname string
	lastname  string
	country   string
	bio       string
}

var demoUsers = []demoUser{
	{"johan@gmail.com", "johan", "Johan", "Lopez", "Mexico", "Apasionado en la redaccion de articulos"},
	{"ana@example.com", "ana123", "Ana", "Garcia", "Mexico", "Enamorada del arte visual"},
	{"luis@example.com", "luis", "Luis", "Martinez", "Mexico", "Fascinado por los datos y la analítica"},
	{"maria@example.com", "maria89", "Maria", "Hernandez", "Mexico", "Amante de la creación de contenido digital"},
}

// Run populates demo users, labels, blogs and posts. It is a no-op when any
// user already exists.
func Run(db *gorm.DB, userRepo authrepo.UserRepository, blogRepo blogrepo.BlogRepository, postRepo blogrepo.PostRepository, labelRepo blogrepo.LabelRepository) error {
	var count int64
	if err := db.Model(&authdomain.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users := make([]*authdomain.User, 0, len(demoUsers))
	for _, d := range demoUsers {
		hash, err := authrepo.HashPassword(d.password)
		if err != nil {
			return err
		}
		user := &authdomain.User{
			Username:  d.username,
			Password:  hash,
			Role:      authdomain.RoleUser,
			Firstname: d.firstname,
			Lastname:  d.lastname,
			Country:   d.country,
			Bio:       d.bio,
		}
		if err := userRepo.Create(user); err != nil {
			return err
		}
		users = append(users, user)
	}

	labels, err := labelRepo.FindOrCreate([]string{"Ciencia", "Tecnologia", "Historia"})
	if err != nil {
		return err
	}

	blog1 := &blogdomain.Blog{
		Title:       "Explorando el Universo",
		Description: "Artículos sobre astronomía y exploración espacial",
		AuthorID:    users[0].ID,
	}
	blog2 := &blogdomain.Blog{
		Title:       "Innovaciones Tecnológicas",
		Description: "Últimas tendencias en tecnología y ciencia",
		AuthorID:    users[1].ID,
	}
	for _, blog := range []*blogdomain.Blog{blog1, blog2} {
		if err := blogRepo.Create(blog); err != nil {
			return err
		}
	}

	posts := []*blogdomain.Post{
		{
			Title:    "La Teoría del Big Bang",
			Content:  "Una explicación detallada sobre la teoría del Big Bang.",
			BlogID:   blog1.ID,
			AuthorID: users[0].ID,
			Labels:   []blogdomain.Label{labels[0], labels[2]},
		},
		{
			Title:    "Inteligencia Artificial en la Medicina",
			Content:  "Cómo la IA está revolucionando la atención médica.",
			BlogID:   blog2.ID,
			AuthorID: users[1].ID,
			Labels:   []blogdomain.Label{labels[1]},
		},
	}
	for _, post := range posts {
		if err := postRepo.Create(post); err != nil {
			return err
		}
	}

	log.Printf("Seeded demo data: %d users, %d labels, 2 blogs, %d posts", len(users), len(labels), len(posts))
	return nil
}
