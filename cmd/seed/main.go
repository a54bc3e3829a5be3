// Команда seed наполняет базу демонстрационными данными: администратором,
// обычным пользователем и двумя анкетами с вопросами всех трех типов.
// Повторный запуск безопасен: существующие записи не дублируются.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/yourusername/questionnaire-api/internal/config"
	"github.com/yourusername/questionnaire-api/internal/domain/entity"
	"github.com/yourusername/questionnaire-api/internal/domain/repository"
	apperrors "github.com/yourusername/questionnaire-api/internal/pkg/errors"
	pgRepo "github.com/yourusername/questionnaire-api/internal/repository/postgres"
	"github.com/yourusername/questionnaire-api/pkg/database"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	userRepo := pgRepo.NewUserRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	questionnaireRepo := pgRepo.NewQuestionnaireRepo(db)

	if err := seedUsers(ctx, userRepo); err != nil {
		log.Printf("Failed to seed users: %v", err)
		os.Exit(1)
	}

	if err := seedQuestionnaires(ctx, questionRepo, questionnaireRepo); err != nil {
		log.Printf("Failed to seed questionnaires: %v", err)
		os.Exit(1)
	}

	log.Println("Seed completed")
}

func seedUsers(ctx context.Context, users repository.UserRepository) error {
	seed := []entity.User{
		{Username: "admin", Password: "admin123", IsAdmin: true},
		{Username: "demo", Password: "demo123"},
	}

	for i := range seed {
		u := &seed[i]
		if _, err := users.GetByUsername(ctx, u.Username); err == nil {
			log.Printf("[Seed] Пользователь %q уже существует, пропускаем", u.Username)
			continue
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}

		if err := users.Create(ctx, u); err != nil {
			return err
		}
		log.Printf("[Seed] Создан пользователь %q (admin=%v)", u.Username, u.IsAdmin)
	}
	return nil
}

func seedQuestionnaires(
	ctx context.Context,
	questions repository.QuestionRepository,
	questionnaires repository.QuestionnaireRepository,
) error {
	existing, err := questionnaires.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Printf("[Seed] Анкеты уже существуют (%d), пропускаем", len(existing))
		return nil
	}

	intake := []entity.Question{
		{Type: entity.QuestionTypeText, Prompt: "Как вас зовут?"},
		{
			Type:    entity.QuestionTypeSingle,
			Prompt:  "Ваш возраст?",
			Options: entity.StringArray{"до 18", "18-25", "26-40", "41-60", "старше 60"},
		},
		{
			Type:    entity.QuestionTypeMulti,
			Prompt:  "Какие направления вам интересны?",
			Options: entity.StringArray{"Спорт", "Музыка", "Программирование", "Языки", "Рисование"},
		},
		{Type: entity.QuestionTypeText, Prompt: "Расскажите о своем опыте"},
	}

	feedback := []entity.Question{
		{
			Type:    entity.QuestionTypeSingle,
			Prompt:  "Оцените качество занятий",
			Options: entity.StringArray{"Отлично", "Хорошо", "Удовлетворительно", "Плохо"},
		},
		{
			Type:    entity.QuestionTypeMulti,
			Prompt:  "Что стоит улучшить?",
			Options: entity.StringArray{"Расписание", "Материалы", "Обратная связь", "Помещение"},
		},
		{Type: entity.QuestionTypeText, Prompt: "Дополнительные пожелания"},
	}

	if err := createQuestionnaire(ctx, questions, questionnaires, "Вводная анкета", intake); err != nil {
		return err
	}
	return createQuestionnaire(ctx, questions, questionnaires, "Анкета обратной связи", feedback)
}

func createQuestionnaire(
	ctx context.Context,
	questions repository.QuestionRepository,
	questionnaires repository.QuestionnaireRepository,
	name string,
	qs []entity.Question,
) error {
	if err := questions.CreateBatch(ctx, qs); err != nil {
		return err
	}

	questionnaire := &entity.Questionnaire{Name: name}
	if err := questionnaires.Create(ctx, questionnaire); err != nil {
		return err
	}

	// Приоритет задает порядок вопросов в анкете
	for i := range qs {
		if err := questionnaires.LinkQuestion(ctx, questionnaire.ID, qs[i].ID, i); err != nil {
			return err
		}
	}

	log.Printf("[Seed] Создана анкета %q с %d вопросами", name, len(qs))
	return nil
}
