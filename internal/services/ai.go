package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/yukikurage/project-board-api/internal/constants"
	"github.com/yukikurage/project-board-api/internal/dto"
	"github.com/yukikurage/project-board-api/internal/repository"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

var (
	ErrAIServiceNotConfigured = fmt.Errorf("%w: AI service is not configured", ErrUnavailable)
	ErrSuggestTextRequired    = fmt.Errorf("%w: text is required", ErrValidation)
)

// AIService turns free text into task suggestions for a project
type AIService struct {
	client      *openai.Client
	projectRepo repository.ProjectRepository
}

type suggestedTask struct {
	Content  string  `json:"content"`
	Deadline *string `json:"deadline"`
}

func NewAIService(apiKey string, projectRepo repository.ProjectRepository) *AIService {
	return NewAIServiceWithConfig(openai.DefaultConfig(apiKey), projectRepo)
}

// NewAIServiceWithConfig creates an AIService with a custom client configuration
func NewAIServiceWithConfig(cfg openai.ClientConfig, projectRepo repository.ProjectRepository) *AIService {
	return &AIService{
		client:      openai.NewClientWithConfig(cfg),
		projectRepo: projectRepo,
	}
}

// SuggestTasks asks the model to split text into tasks for the project.
// Nothing is persisted. A nil service reports ErrAIServiceNotConfigured.
func (s *AIService) SuggestTasks(ctx context.Context, projectID uint64, text *string) ([]dto.TaskSuggestionDTO, error) {
	if s == nil || s.client == nil {
		return nil, ErrAIServiceNotConfigured
	}
	if text == nil || strings.TrimSpace(*text) == "" {
		return nil, ErrSuggestTextRequired
	}

	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, storageError("find project", err)
	}

	today := time.Now().Format(dateLayout)
	prompt := fmt.Sprintf(`You split project notes into concrete tasks.

Today: %s
Project: %s (from %s to %s)

Notes:
%s

Reply with a JSON array only, no prose:
[
  {
    "content": "short task description",
    "deadline": "YYYY-MM-DD, or null when the notes give no date"
  }
]

Rules:
- Return [] when the notes contain no tasks
- Resolve relative dates ("tomorrow", "next week") against today
- Deadlines must not be later than the project deadline`, today, project.Name, project.StartDate, project.Deadline, *text)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: OpenAI API error: %v", ErrInternal, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no response from OpenAI", ErrInternal)
	}

	content := stripCodeFence(resp.Choices[0].Message.Content)

	var tasks []suggestedTask
	if err := json.Unmarshal([]byte(content), &tasks); err != nil {
		return nil, fmt.Errorf("%w: failed to parse AI response: %v (response: %s)", ErrInternal, err, content)
	}

	suggestions := make([]dto.TaskSuggestionDTO, 0, len(tasks))
	for _, task := range tasks {
		if len(suggestions) == constants.MaxSuggestedTasks {
			break
		}

		taskContent := strings.TrimSpace(task.Content)
		if taskContent == "" {
			continue
		}

		suggestions = append(suggestions, dto.TaskSuggestionDTO{
			Content:  taskContent,
			Deadline: normalizeDeadline(task.Deadline),
		})
	}

	return suggestions, nil
}

// normalizeDeadline keeps only deadlines in YYYY-MM-DD form.
func normalizeDeadline(deadline *string) *string {
	if deadline == nil {
		return nil
	}

	value := strings.TrimSpace(*deadline)
	if _, err := time.Parse(dateLayout, value); err != nil {
		return nil
	}
	return &value
}

// stripCodeFence removes a surrounding ```json fence the model sometimes adds.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```")
	content = strings.TrimPrefix(content, "json")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
