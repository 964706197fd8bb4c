package population

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PopulationRepository handles DB operations for candidate resolution.
type PopulationRepository struct {
	studentsCollection *mongo.Collection
}

// NewPopulationRepository creates a new repository for population queries.
func NewPopulationRepository(db *mongo.Database) *PopulationRepository {
	return &PopulationRepository{
		studentsCollection: db.Collection("students"),
	}
}

// FindCandidates returns the raw eligible set for the filter, before any
// roster intersection. Callers must have validated the filter: empty id
// slices here mean "match nothing" and short-circuit to an empty result.
func (r *PopulationRepository) FindCandidates(ctx context.Context, f FilterSpec) ([]Candidate, error) {
	if len(f.ProgramCourseIDs) == 0 || len(f.PaperIDs) == 0 || len(f.AcademicYearIDs) == 0 {
		return []Candidate{}, nil
	}

	filter := bson.M{
		"class_id":          f.ClassID,
		"program_course_id": bson.M{"$in": f.ProgramCourseIDs},
		"academic_year_id":  bson.M{"$in": f.AcademicYearIDs},
		"paper_ids":         bson.M{"$in": f.PaperIDs},
	}
	if len(f.ShiftIDs) > 0 {
		filter["shift_id"] = bson.M{"$in": f.ShiftIDs}
	}
	if f.Gender != "" {
		filter["gender"] = f.Gender
	}

	cursor, err := r.studentsCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var candidates []Candidate
	if err := cursor.All(ctx, &candidates); err != nil {
		return nil, err
	}
	if candidates == nil {
		candidates = []Candidate{}
	}
	return candidates, nil
}
