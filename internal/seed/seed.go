package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"fitfeed/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumWorkouts int
	ShouldClean bool
	// DryRun logs what would be created without touching the database.
	DryRun bool
	// SkipBcrypt stores plaintext passwords; fast mode for local seeding.
	SkipBcrypt bool
	// MaxDays bounds how far back generated timestamps spread.
	MaxDays int
}

// Distribution describes how seeded workouts split across visibility tiers.
type Distribution struct {
	Public    int
	Followers int
	Private   int
}

var defaultDistribution = Distribution{Public: 5, Followers: 3, Private: 2}

// VisibilityDistributions are named alternative splits usable by presets.
var VisibilityDistributions = map[string]Distribution{
	"public-heavy": {Public: 8, Followers: 1, Private: 1},
	"journal":      {Public: 1, Followers: 2, Private: 7},
}

func computeCounts(total int, d Distribution) (public, followers, private int) {
	sum := d.Public + d.Followers + d.Private
	if sum == 0 {
		return total, 0, 0
	}
	followers = total * d.Followers / sum
	private = total * d.Private / sum
	public = total - followers - private
	return public, followers, private
}

// Seeder orchestrates bulk data generation on top of Factory.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	opts    Options
	r       *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts ...Options) *Seeder {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Seeder{
		db:      db,
		factory: NewFactory(db, o),
		opts:    o,
		r:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll empties every application table. Postgres only.
func (s *Seeder) ClearAll() error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE comments, likes, follows, log_entries, workout_logs, exercises, workouts, users RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

// SeedSocialMesh creates `count` users and a randomized follow graph
// between them. The first few accounts are fixed for predictable logins.
func (s *Seeder) SeedSocialMesh(count int) ([]models.User, error) {
	users := make([]models.User, 0, count)

	if count >= 3 {
		for _, name := range []string{"alex", "jordan", "test"} {
			n := name
			user, err := s.factory.CreateUser(func(u *models.User) {
				u.Username = n
				u.Email = fmt.Sprintf("%s@example.com", n)
				u.Bio = "One of the OGs."
				u.Avatar = fmt.Sprintf("https://i.pravatar.cc/150?u=%s", n)
			})
			if err != nil {
				log.Printf("Failed to create user %s: %v", n, err)
				continue
			}
			users = append(users, *user)
		}
	}

	for i := len(users); i < count; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, *user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	// Each user follows roughly a third of the others.
	for i := range users {
		for j := range users {
			if i == j {
				continue
			}
			if s.r.Float32() < 0.3 {
				if err := s.factory.CreateFollow(&users[i], &users[j]); err != nil {
					return nil, fmt.Errorf("failed to create follow: %w", err)
				}
			}
		}
	}

	return users, nil
}

// SeedEngagement creates `count` workouts spread across the users plus
// likes, comments, and log history for the visible ones.
func (s *Seeder) SeedEngagement(users []models.User, count int) ([]models.Workout, error) {
	return s.seedEngagementWithDistribution(users, count, defaultDistribution)
}

func (s *Seeder) seedEngagementWithDistribution(users []models.User, count int, d Distribution) ([]models.Workout, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to seed workouts for")
	}

	public, followers, private := computeCounts(count, d)
	visibilities := make([]models.Visibility, 0, count)
	for i := 0; i < public; i++ {
		visibilities = append(visibilities, models.VisibilityPublic)
	}
	for i := 0; i < followers; i++ {
		visibilities = append(visibilities, models.VisibilityFollowers)
	}
	for i := 0; i < private; i++ {
		visibilities = append(visibilities, models.VisibilityPrivate)
	}

	built := make([]*models.Workout, 0, count)
	for _, visibility := range visibilities {
		owner := users[s.r.Intn(len(users))]
		built = append(built, s.factory.BuildWorkoutWithTemplate(&owner, visibility))
	}
	if err := s.factory.CreateWorkoutsBatch(built); err != nil {
		return nil, fmt.Errorf("failed to create workouts: %w", err)
	}

	workouts := make([]models.Workout, 0, len(built))
	for i, w := range built {
		workouts = append(workouts, *w)

		// Owner logs a handful of sessions spread since creation.
		owner := models.User{ID: w.UserID}
		sessions := s.r.Intn(6)
		for j := 0; j < sessions; j++ {
			date := w.CreatedAt.Add(time.Duration(s.r.Intn(int(time.Since(w.CreatedAt).Hours())+1)) * time.Hour)
			if _, err := s.factory.CreateLog(&owner, w, date); err != nil {
				return nil, fmt.Errorf("failed to create log: %w", err)
			}
		}

		if w.Visibility == models.VisibilityPrivate {
			continue
		}

		// Likes and comments from random other users.
		for _, u := range users {
			if u.ID == w.UserID {
				continue
			}
			if s.r.Float32() < 0.2 {
				if err := s.factory.CreateLike(&u, w); err != nil {
					return nil, fmt.Errorf("failed to create like: %w", err)
				}
			}
			if s.r.Float32() < 0.05 {
				if _, err := s.factory.CreateComment(&u, w); err != nil {
					return nil, fmt.Errorf("failed to create comment: %w", err)
				}
			}
		}

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d workouts...", i)
		}
	}

	return workouts, nil
}

// ApplyPreset runs a named canned seeding scenario.
func (s *Seeder) ApplyPreset(name string) error {
	switch name {
	case "Demo":
		users, err := s.SeedSocialMesh(10)
		if err != nil {
			return err
		}
		_, err = s.seedEngagementWithDistribution(users, 40, VisibilityDistributions["public-heavy"])
		return err
	case "MegaPopulated":
		users, err := s.SeedSocialMesh(200)
		if err != nil {
			return err
		}
		_, err = s.SeedEngagement(users, 1000)
		return err
	default:
		return fmt.Errorf("unknown preset %q", name)
	}
}
