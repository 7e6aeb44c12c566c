package mapper

import (
	"encoding/json"

	"ai-brainstorm-be/internal/entity"
	"ai-brainstorm-be/internal/model"

	"gorm.io/datatypes"
)

type ActivityLogMapper struct{}

func NewActivityLogMapper() *ActivityLogMapper {
	return &ActivityLogMapper{}
}

func (m *ActivityLogMapper) ToEntity(a *model.ActivityLog) *entity.ActivityLog {
	if a == nil {
		return nil
	}

	detail := make(map[string]interface{})
	if len(a.Detail) > 0 {
		// Best effort, a log row with broken detail is still a log row
		_ = json.Unmarshal(a.Detail, &detail)
	}

	return &entity.ActivityLog{
		Id:        a.Id,
		ProjectId: a.ProjectId,
		UserId:    a.UserId,
		EventType: a.EventType,
		Detail:    detail,
		CreatedAt: a.CreatedAt,
	}
}

func (m *ActivityLogMapper) ToModel(a *entity.ActivityLog) *model.ActivityLog {
	if a == nil {
		return nil
	}

	var detail datatypes.JSON
	if a.Detail != nil {
		if b, err := json.Marshal(a.Detail); err == nil {
			detail = datatypes.JSON(b)
		}
	}

	return &model.ActivityLog{
		Id:        a.Id,
		ProjectId: a.ProjectId,
		UserId:    a.UserId,
		EventType: a.EventType,
		Detail:    detail,
		CreatedAt: a.CreatedAt,
	}
}

func (m *ActivityLogMapper) ToEntities(logs []*model.ActivityLog) []*entity.ActivityLog {
	entities := make([]*entity.ActivityLog, len(logs))
	for i, a := range logs {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
