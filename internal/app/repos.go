package app

import (
	"gorm.io/gorm"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/repos"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/assessment"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
)

type Repos struct {
	Department repos.DepartmentRepo

	FacultyOutput repos.DatasetRepo[assessment.FacultyOutputRecord]
	NEP           repos.DatasetRepo[assessment.NEPRecord]
	Governance    repos.DatasetRepo[assessment.GovernanceRecord]
	PhDStudent    repos.DatasetRepo[assessment.PhDStudentRecord]
	Support       repos.DatasetRepo[assessment.SupportRecord]
	Conference    repos.DatasetRepo[assessment.ConferenceRecord]
	Collaboration repos.DatasetRepo[assessment.CollaborationRecord]
	Intake        repos.StudentIntakeRepo
	Placement     repos.StudentPlacementRepo

	CachedScore  repos.CachedScoreRepo
	ExpertReview repos.ExpertReviewRepo
	Document     repos.DocumentRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Department: repos.NewDepartmentRepo(db, log),

		FacultyOutput: repos.NewFacultyOutputRepo(db, log),
		NEP:           repos.NewNEPRepo(db, log),
		Governance:    repos.NewGovernanceRepo(db, log),
		PhDStudent:    repos.NewPhDStudentRepo(db, log),
		Support:       repos.NewSupportRepo(db, log),
		Conference:    repos.NewConferenceRepo(db, log),
		Collaboration: repos.NewCollaborationRepo(db, log),
		Intake:        repos.NewStudentIntakeRepo(db, log),
		Placement:     repos.NewStudentPlacementRepo(db, log),

		CachedScore:  repos.NewCachedScoreRepo(db, log),
		ExpertReview: repos.NewExpertReviewRepo(db, log),
		Document:     repos.NewDocumentRepo(db, log),
	}
}
