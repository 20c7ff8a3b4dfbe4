package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-onboarding/internal/employee"
	employeeerrors "go-onboarding/internal/employee/errors"
	"go-onboarding/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeCreated membaca event employee_created dan menandai akun ERP
// sebagai provisioned. Event tanpa akses ERP langsung di-commit tanpa aksi.
func ConsumeEmployeeCreated(
	ctx context.Context,
	reader *kafkago.Reader,
	employeeService employee.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.erp_provisioning")
	log.Info("erp provisioning consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("erp provisioning consumer stopped")
				return
			}
			log.Error("fetch employee_created message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if !event.ERPEnabled {
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		err = employeeService.MarkERPProvisioned(ctx, event.CompanyID, event.EmployeeID)
		if err != nil {
			if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
				log.Warn("employee missing for provisioning event, skipping",
					zap.String("employee_id", event.EmployeeID),
					zap.String("company_id", event.CompanyID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("mark erp provisioned failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee_created message failed", zap.Error(err))
			continue
		}

		log.Info("erp account provisioned from employee_created event",
			zap.String("employee_id", event.EmployeeID),
			zap.String("company_id", event.CompanyID),
		)
	}
}
