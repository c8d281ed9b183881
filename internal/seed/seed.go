package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/edukit/school-api/internal/app/models"
	appRepos "github.com/edukit/school-api/internal/app/repositories"
)

// CreateDefaultData populates an empty store with a handful of sample rows.
// It is a no-op when any teacher already exists, so repeated startups do not
// duplicate data.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	teacherRepo := appRepos.NewTeacherRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)
	studentRepo := appRepos.NewStudentRepository(dbPool)

	existing, err := teacherRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		lgr.Debug().Msg("Store already populated, skipping seed data")
		return nil
	}

	lgr.Info().Msg("Creating sample data...")

	science := "Science"
	maths := "Mathematics"
	teachers := []*appModels.Teacher{
		{Name: "Alice Nguyen", Department: &science},
		{Name: "Bob Carter", Department: &maths},
	}
	for _, teacher := range teachers {
		if err := teacherRepo.Create(ctx, teacher); err != nil {
			lgr.Error().Err(err).Str("name", teacher.Name).Msg("Error creating sample teacher")
			return err
		}
	}

	start := appModels.NewDate(2026, 2, 2)
	end := appModels.NewDate(2026, 6, 26)
	courses := []*appModels.Course{
		{Name: "Biology 101", StartDate: &start, EndDate: &end, TeacherID: &teachers[0].ID},
		{Name: "Algebra (Introductory)", TeacherID: &teachers[1].ID},
		{Name: "Study Skills"},
	}
	for _, course := range courses {
		if err := courseRepo.Create(ctx, course); err != nil {
			lgr.Error().Err(err).Str("name", course.Name).Msg("Error creating sample course")
			return err
		}
	}

	students := []*appModels.Student{
		{Name: "Carol Mendes", Email: "carol.mendes@example.com"},
		{Name: "Dan Okafor", Email: "dan.okafor@example.com"},
	}
	for _, student := range students {
		if err := studentRepo.Create(ctx, student); err != nil {
			lgr.Error().Err(err).Str("name", student.Name).Msg("Error creating sample student")
			return err
		}
	}

	lgr.Info().Msg("Sample data created")
	return nil
}
