package service

import "github.com/portfolio/portfolio/internal/model"

// SkillService serves the fixed skills list. It never touches the store.
type SkillService struct{}

// NewSkillService creates a new SkillService.
func NewSkillService() *SkillService {
	return &SkillService{}
}

// ListSkills returns a copy of the fixed skills list.
func (s *SkillService) ListSkills() []string {
	out := make([]string, len(model.Skills))
	copy(out, model.Skills)
	return out
}
