package dao

import "github.com/ego-component/egorm"

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(
		&Application{},
		&Slot{},
		&TestAttempt{},
		&Answer{},
		&Violation{},
		&EvaluationParameter{},
		&Evaluation{},
		&EvaluationScore{},
	)
}
