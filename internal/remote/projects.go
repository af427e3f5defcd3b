package remote

import (
	"context"
	"log/slog"

	"github.com/fieldlog/fieldlog/gen/ent"
	"github.com/fieldlog/fieldlog/gen/ent/contractor"
	"github.com/fieldlog/fieldlog/gen/ent/project"
	"github.com/fieldlog/fieldlog/internal/entity"
)

type ProjectRepository interface {
	ListProjects(ctx context.Context) ([]entity.Project, error)
}

type projectRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProjectRepository(client *ent.Client, logger *slog.Logger) ProjectRepository {
	return &projectRepository{client: client, logger: logger}
}

func (r *projectRepository) ListProjects(ctx context.Context) ([]entity.Project, error) {
	rows, err := r.client.Project.Query().
		WithContractors(func(q *ent.ContractorQuery) {
			q.Order(contractor.BySortOrder())
		}).
		Order(project.ByName()).
		All(ctx)
	if err != nil {
		r.logger.Error("remote.projects.list_failed", "error", err)
		return nil, classify("list projects", err)
	}

	out := make([]entity.Project, len(rows))
	for i, row := range rows {
		out[i] = toProject(row)
	}
	return out, nil
}

func toProject(row *ent.Project) entity.Project {
	p := entity.Project{
		ID:        row.ID,
		Name:      row.Name,
		Status:    row.Status,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	for _, c := range row.Edges.Contractors {
		p.Contractors = append(p.Contractors, entity.Contractor{
			ID:           c.ID,
			ProjectID:    c.ProjectID,
			Name:         c.Name,
			Abbreviation: c.Abbreviation,
			Type:         c.Type,
			Trade:        c.Trade,
			Status:       c.Status,
		})
	}
	return p
}
