package employee

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	employeeerrors "go-personnel/internal/employee/errors"
	"go-personnel/internal/events"
	"go-personnel/internal/messaging/kafka"
	"go-personnel/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (EmployeeDetailResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (int64, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	empl, err := buildEmployee(0, req)
	if err != nil {
		s.logger.Warn("create employee invalid payload", zap.Error(err))
		return 0, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		// Parent first: the children need the generated id.
		if err := qtx.CreateEmployee(ctx, empl); err != nil {
			s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}

		if err := qtx.CreateEducation(ctx, &EducationRecord{
			EmployeeID:     empl.ID,
			Degree:         req.Degree,
			University:     req.University,
			GraduationYear: req.GraduationYear,
		}); err != nil {
			s.logger.Error("create education persist failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}

		if err := qtx.CreateExperience(ctx, &WorkExperienceRecord{
			EmployeeID:        empl.ID,
			CompanyName:       req.PrevCompany,
			JobTitle:          req.JobTitle,
			YearsOfExperience: req.ExperienceYears,
		}); err != nil {
			s.logger.Error("create work experience persist failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}

		if err := qtx.CreateEmergencyContact(ctx, &EmergencyContact{
			EmployeeID:   empl.ID,
			ContactName:  req.EmergencyContactName,
			Relationship: req.EmergencyContactRelationship,
			PhoneNumber:  req.EmergencyContactNumber,
		}); err != nil {
			s.logger.Error("create emergency contact persist failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}

		return s.enqueueLifecycleEvent(ctx, tx, events.EmployeeCreated, empl.ID, rid)
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", empl.ID),
	)

	return empl.ID, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeDetailResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Int64("employee_id", id))

	detail, err := s.repo.FindDetailByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeDetailResponse{}, mapRepositoryError(err)
	}

	education, err := s.repo.FindEducationByEmployee(ctx, id)
	if err != nil {
		return EmployeeDetailResponse{}, mapRepositoryError(err)
	}
	experience, err := s.repo.FindExperienceByEmployee(ctx, id)
	if err != nil {
		return EmployeeDetailResponse{}, mapRepositoryError(err)
	}
	contact, err := s.repo.FindEmergencyContactByEmployee(ctx, id)
	if err != nil {
		return EmployeeDetailResponse{}, mapRepositoryError(err)
	}

	return mapToDetailResponse(detail, education, experience, contact), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	empl, err := buildEmployee(id, req)
	if err != nil {
		s.logger.Warn("update employee invalid payload", zap.Error(err))
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if err := qtx.UpdateEmployee(ctx, empl); err != nil {
			s.logger.Error("update employee persist failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}

		// Children are upserted so an aggregate created before a child table
		// existed still converges on update.
		if err := qtx.UpsertEducation(ctx, &EducationRecord{
			EmployeeID:     id,
			Degree:         req.Degree,
			University:     req.University,
			GraduationYear: req.GraduationYear,
		}); err != nil {
			s.logger.Error("upsert education failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}

		if err := qtx.UpsertExperience(ctx, &WorkExperienceRecord{
			EmployeeID:        id,
			CompanyName:       req.PrevCompany,
			JobTitle:          req.JobTitle,
			YearsOfExperience: req.ExperienceYears,
		}); err != nil {
			s.logger.Error("upsert work experience failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}

		if err := qtx.UpsertEmergencyContact(ctx, &EmergencyContact{
			EmployeeID:   id,
			ContactName:  req.EmergencyContactName,
			Relationship: req.EmergencyContactRelationship,
			PhoneNumber:  req.EmergencyContactNumber,
		}); err != nil {
			s.logger.Error("upsert emergency contact failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}

		return s.enqueueLifecycleEvent(ctx, tx, events.EmployeeUpdated, id, rid)
	})
	if err != nil {
		return err
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		// Children before parent to satisfy the foreign keys. Zero affected
		// rows are fine: deleting an unknown id succeeds.
		if err := qtx.DeleteEducationByEmployee(ctx, id); err != nil {
			s.logger.Error("delete education failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}
		if err := qtx.DeleteExperienceByEmployee(ctx, id); err != nil {
			s.logger.Error("delete work experience failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}
		if err := qtx.DeleteEmergencyContactByEmployee(ctx, id); err != nil {
			s.logger.Error("delete emergency contact failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}
		if err := qtx.DeleteEmployee(ctx, id); err != nil {
			s.logger.Error("delete employee failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}

		return s.enqueueLifecycleEvent(ctx, tx, events.EmployeeDeleted, id, rid)
	})
	if err != nil {
		return err
	}

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)
	return nil
}

func (s *service) enqueueLifecycleEvent(
	ctx context.Context,
	tx *gorm.DB,
	eventType string,
	employeeID int64,
	rid string,
) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.EmployeeLifecycleEvent{
		EventType:  eventType,
		RequestID:  rid,
		EmployeeID: employeeID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   strconv.FormatInt(employeeID, 10),
		EventType:     eventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("outbox persist failed",
			zap.String("request_id", rid),
			zap.Int64("employee_id", employeeID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func buildEmployee(id int64, req EmployeePayload) (*Employee, error) {
	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return nil, employeeerrors.ErrInvalidDate
	}
	employmentDate, err := time.Parse("2006-01-02", req.EmploymentDate)
	if err != nil {
		return nil, employeeerrors.ErrInvalidDate
	}

	return &Employee{
		ID:               id,
		FullName:         req.FullName,
		DOB:              dob,
		Gender:           req.Gender,
		Nationality:      req.Nationality,
		PassportNumber:   req.PassportNumber,
		PhoneNumber:      req.PhoneNumber,
		Email:            req.Email,
		Country:          req.Country,
		City:             req.City,
		PostalCode:       req.PostalCode,
		StreetAddress:    req.StreetAddress,
		PositionID:       req.PositionID,
		DepartmentID:     req.DepartmentID,
		EmploymentDate:   employmentDate,
		EmploymentTypeID: req.EmploymentTypeID,
	}, nil
}

func mapToDetailResponse(
	detail *EmployeeDetail,
	education *EducationRecord,
	experience *WorkExperienceRecord,
	contact *EmergencyContact,
) EmployeeDetailResponse {
	resp := EmployeeDetailResponse{
		ID:                 detail.ID,
		FullName:           detail.FullName,
		DOB:                detail.DOB.Format("2006-01-02"),
		Gender:             detail.Gender,
		Nationality:        detail.Nationality,
		PassportNumber:     detail.PassportNumber,
		PhoneNumber:        detail.PhoneNumber,
		Email:              detail.Email,
		Country:            detail.Country,
		City:               detail.City,
		PostalCode:         detail.PostalCode,
		StreetAddress:      detail.StreetAddress,
		PositionID:         detail.PositionID,
		DepartmentID:       detail.DepartmentID,
		EmploymentDate:     detail.EmploymentDate.Format("2006-01-02"),
		EmploymentTypeID:   detail.EmploymentTypeID,
		PositionName:       strOrEmpty(detail.PositionName),
		DepartmentName:     strOrEmpty(detail.DepartmentName),
		EmploymentTypeName: strOrEmpty(detail.EmploymentTypeName),
	}

	if education != nil {
		resp.Education = &EducationResponse{
			Degree:         education.Degree,
			University:     education.University,
			GraduationYear: education.GraduationYear,
		}
	}
	if experience != nil {
		resp.Experience = &ExperienceResponse{
			CompanyName:       experience.CompanyName,
			JobTitle:          experience.JobTitle,
			YearsOfExperience: experience.YearsOfExperience,
		}
	}
	if contact != nil {
		resp.EmergencyContact = &EmergencyContactResponse{
			ContactName:  contact.ContactName,
			Relationship: contact.Relationship,
			PhoneNumber:  contact.PhoneNumber,
		}
	}

	return resp
}

func strOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
