package dto

import "github.com/yukikurage/project-board-api/internal/models"

// SnapshotDTO is the consolidated read model served by GET /api/data
type SnapshotDTO struct {
	Users       []UserDTO    `json:"users"`
	Projects    []ProjectDTO `json:"projects"`
	Posts       []PostDTO    `json:"posts"`
	HasNewPosts bool         `json:"has_new_posts"`
}

// ToSnapshotDTO assembles the snapshot from loaded rows. Tasks and comments are
// grouped by project id; projects keep the order they were loaded in.
func ToSnapshotDTO(
	users []models.User,
	projects []models.Project,
	tasks []models.Task,
	comments []models.Comment,
	posts []models.Post,
	hasNewPosts bool,
) SnapshotDTO {
	tasksByProject := make(map[uint64][]models.Task)
	for _, task := range tasks {
		tasksByProject[task.ProjectID] = append(tasksByProject[task.ProjectID], task)
	}

	commentsByProject := make(map[uint64][]models.Comment)
	for _, comment := range comments {
		commentsByProject[comment.ProjectID] = append(commentsByProject[comment.ProjectID], comment)
	}

	snapshot := SnapshotDTO{
		Users:       make([]UserDTO, len(users)),
		Projects:    make([]ProjectDTO, len(projects)),
		Posts:       make([]PostDTO, len(posts)),
		HasNewPosts: hasNewPosts,
	}

	for i, user := range users {
		snapshot.Users[i] = ToUserDTO(user)
	}
	for i, project := range projects {
		snapshot.Projects[i] = ToProjectDTO(project, tasksByProject[project.ID], commentsByProject[project.ID])
	}
	for i, post := range posts {
		snapshot.Posts[i] = ToPostDTO(post)
	}

	return snapshot
}
