package usage

import (
	"context"

	"github.com/netops-tools/te-reporter/pkg/adapters"
	"github.com/netops-tools/te-reporter/pkg/models/api"
	"github.com/netops-tools/te-reporter/pkg/models/domain"
)

type API interface {
	GetUsage(ctx context.Context) (api.Usage, error)
}

// Manager exposes organization-wide unit usage for the current quota month.
type Manager interface {
	GetUsage(ctx context.Context) (*domain.Usage, error)
}

type usageManager struct {
	client API
}

func NewManager(client API) Manager {
	return &usageManager{client: client}
}

func (m *usageManager) GetUsage(ctx context.Context) (*domain.Usage, error) {
	record, err := m.client.GetUsage(ctx)
	if err != nil {
		return nil, err
	}

	usage := adapters.MapUsageToDomain(record)
	return &usage, nil
}
