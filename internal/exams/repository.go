package exams

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ExamRepository handles DB operations for committed exam definitions.
type ExamRepository struct {
	examsCollection *mongo.Collection
}

// NewExamRepository creates a new repository for exam queries.
func NewExamRepository(db *mongo.Database) *ExamRepository {
	return &ExamRepository{
		examsCollection: db.Collection("exams"),
	}
}

// FindExams returns the committed exams for a class touching any of the given
// academic years, the comparison set for duplicate detection.
func (r *ExamRepository) FindExams(ctx context.Context, classID int, academicYearIDs []int) ([]ExamDefinition, error) {
	filter := bson.M{
		"class_id":          classID,
		"academic_year_ids": bson.M{"$in": academicYearIDs},
	}
	cursor, err := r.examsCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var exams []ExamDefinition
	if err := cursor.All(ctx, &exams); err != nil {
		return nil, err
	}
	return exams, nil
}
