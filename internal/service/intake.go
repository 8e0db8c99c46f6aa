// Package service implements the intake pipeline: it classifies the
// validation result of a submitted MTB file and either rejects it,
// stages it together with its quality report, or forwards it to the
// downstream query service and purges local staging.
package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mtb-intake-service/internal/domain"
	"github.com/mtb-intake-service/internal/validation"
)

// OutcomeKind tags the result of an intake operation.
type OutcomeKind string

const (
	OutcomeImported       OutcomeKind = "imported"
	OutcomeIssuesDetected OutcomeKind = "issues-detected"
	OutcomeInvalidData    OutcomeKind = "invalid-data"
	OutcomeDeleted        OutcomeKind = "deleted"
	OutcomeError          OutcomeKind = "unspecific-error"
)

// IntakeOutcome is returned to callers of the pipeline. Exactly the fields
// belonging to its kind are populated.
type IntakeOutcome struct {
	Kind    OutcomeKind               `json:"kind"`
	File    *domain.MTBFile           `json:"file,omitempty"`
	Report  *domain.DataQualityReport `json:"report,omitempty"`
	Patient domain.PatientID          `json:"patient,omitempty"`
	Message string                    `json:"message,omitempty"`
}

// IntakeService is the pipeline behind the intake boundary. The validation
// path is pure; suspension points are the staging store and the query
// service.
type IntakeService struct {
	log       *logrus.Logger
	site      string
	validator *validation.FileValidator
	store     domain.StagingStore
	query     domain.QueryService
}

// NewIntakeService wires the pipeline. The local site identifier is
// mandatory and has no fallback.
func NewIntakeService(
	logger *logrus.Logger,
	site string,
	validator *validation.FileValidator,
	store domain.StagingStore,
	query domain.QueryService,
) (*IntakeService, error) {
	if site == "" {
		return nil, domain.ErrMissingSite
	}
	return &IntakeService{
		log:       logger,
		site:      site,
		validator: validator,
		store:     store,
		query:     query,
	}, nil
}

// ProcessUpload stamps the local site onto the patient, validates the file
// and acts on the classification of the resulting report:
//
//   - valid, or all issues merely informational: forward to the query
//     service and purge local staging
//   - any fatal issue: reject, neither forward nor persist
//   - otherwise: stage file and report for curation
func (s *IntakeService) ProcessUpload(ctx context.Context, file *domain.MTBFile) IntakeOutcome {
	file.Patient.ManagingZPM = s.site
	patient := file.Patient.ID

	report := s.validator.Report(file)

	switch classify(report) {
	case OutcomeImported:
		return s.forward(ctx, file, patient)

	case OutcomeInvalidData:
		s.log.WithFields(logrus.Fields{
			"patient": patient,
			"issues":  len(report.Issues),
		}).Warn("MTB file rejected, fatal data quality issues")
		return IntakeOutcome{Kind: OutcomeInvalidData, Report: report, Patient: patient}

	default:
		if err := s.store.Save(ctx, file, report); err != nil {
			s.log.WithError(err).WithField("patient", patient).Error("Staging MTB file failed")
			return unspecificError(patient, fmt.Errorf("staging MTB file: %w", err))
		}
		s.log.WithFields(logrus.Fields{
			"patient": patient,
			"issues":  len(report.Issues),
		}).Info("MTB file staged with data quality report")
		return IntakeOutcome{Kind: OutcomeIssuesDetected, Report: report, Patient: patient}
	}
}

// ProcessDelete purges staging for the patient and instructs the query
// service to delete, concurrently; success requires both legs.
func (s *IntakeService) ProcessDelete(ctx context.Context, patient domain.PatientID) IntakeOutcome {
	storeErr := make(chan error, 1)
	queryErr := make(chan error, 1)

	go func() { storeErr <- s.store.DeleteAll(ctx, patient) }()
	go func() { queryErr <- s.query.Delete(ctx, patient) }()

	var firstErr error
	for _, ch := range []chan error{storeErr, queryErr} {
		if err := <-ch; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		s.log.WithError(firstErr).WithField("patient", patient).Error("Patient data deletion failed")
		return unspecificError(patient, fmt.Errorf("deleting patient data: %w", firstErr))
	}

	s.log.WithField("patient", patient).Info("Patient data deleted")
	return IntakeOutcome{Kind: OutcomeDeleted, Patient: patient}
}

func (s *IntakeService) forward(ctx context.Context, file *domain.MTBFile, patient domain.PatientID) IntakeOutcome {
	if err := s.query.Upload(ctx, file); err != nil {
		s.log.WithError(err).WithField("patient", patient).Error("Forwarding MTB file failed")
		return unspecificError(patient, fmt.Errorf("forwarding MTB file: %w", err))
	}
	if err := s.store.DeleteAll(ctx, patient); err != nil {
		s.log.WithError(err).WithField("patient", patient).Error("Purging staged copy failed")
		return unspecificError(patient, fmt.Errorf("purging staged copy: %w", err))
	}
	s.log.WithField("patient", patient).Info("MTB file imported")
	return IntakeOutcome{Kind: OutcomeImported, File: file, Patient: patient}
}

// classify maps a quality report onto the outcome kind by the set of
// severities present, not by issue order. A report of purely informational
// notes is treated as valid.
func classify(report *domain.DataQualityReport) OutcomeKind {
	if report == nil {
		return OutcomeImported
	}
	if report.HasSeverity(domain.SeverityFatal) {
		return OutcomeInvalidData
	}
	if max, ok := report.MaxSeverity(); ok && max == domain.SeverityInfo {
		return OutcomeImported
	}
	return OutcomeIssuesDetected
}

func unspecificError(patient domain.PatientID, err error) IntakeOutcome {
	return IntakeOutcome{Kind: OutcomeError, Patient: patient, Message: err.Error()}
}
