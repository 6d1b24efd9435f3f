package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	classModel "craftedshots_backend/internals/features/classes/listings/model"
	selectedModel "craftedshots_backend/internals/features/classes/selections/model"
	"craftedshots_backend/internals/features/payment/payments/model"
	"craftedshots_backend/internals/store"
)

const (
	StepInsertPayment   = "insert_payment"
	StepDecrementSeats  = "decrement_seats"
	StepDeleteSelection = "delete_selection"
)

// StepRecorder diimplementasikan metrics.Metrics.
type StepRecorder interface {
	SettlementStep(step string, err error)
}

type noopRecorder struct{}

func (noopRecorder) SettlementStep(string, error) {}

// StepError menandai langkah yang gagal; langkah sebelumnya tetap tersimpan.
type StepError struct {
	Step      string
	Completed []string
	Err       error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("settlement %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

type SettlementResult struct {
	InsertResult store.InsertResult `json:"insertResult"`
	UpdateResult store.UpdateResult `json:"updateResult"`
	DeleteResult store.DeleteResult `json:"deleteResult"`
}

// SettlementService menjalankan tiga langkah berurutan tanpa transaksi,
// tanpa lock dan tanpa kompensasi.
type SettlementService struct {
	Payments store.Collection[model.PaymentModel]
	Classes  store.Collection[classModel.ClassModel]
	Selected store.Collection[selectedModel.SelectedClassModel]
	Steps    StepRecorder
	Log      *zap.Logger
}

func NewSettlementService(
	payments store.Collection[model.PaymentModel],
	classes store.Collection[classModel.ClassModel],
	selected store.Collection[selectedModel.SelectedClassModel],
	steps StepRecorder,
	log *zap.Logger,
) *SettlementService {
	if steps == nil {
		steps = noopRecorder{}
	}
	return &SettlementService{Payments: payments, Classes: classes, Selected: selected, Steps: steps, Log: log}
}

// Settle: (a) insert payment, (b) kursi class listing p.SelectedClassID
// dikurangi satu (upsert), (c) selected class p.ClassID dihapus.
func (s *SettlementService) Settle(ctx context.Context, p *model.PaymentModel) (*SettlementResult, error) {
	var (
		out  SettlementResult
		done []string
		err  error
	)

	out.InsertResult, err = s.Payments.InsertOne(ctx, p)
	s.Steps.SettlementStep(StepInsertPayment, err)
	if err != nil {
		return nil, s.fail(StepInsertPayment, done, err, p)
	}
	done = append(done, StepInsertPayment)

	out.UpdateResult, err = s.Classes.UpdateOne(ctx,
		store.Filter{"id": p.SelectedClassID},
		store.Patch{Inc: map[string]int64{"available_seats": -1}},
		store.UpdateOptions{Upsert: true},
	)
	s.Steps.SettlementStep(StepDecrementSeats, err)
	if err != nil {
		return nil, s.fail(StepDecrementSeats, done, err, p)
	}
	done = append(done, StepDecrementSeats)

	out.DeleteResult, err = s.Selected.DeleteOne(ctx, store.Filter{"id": p.ClassID})
	s.Steps.SettlementStep(StepDeleteSelection, err)
	if err != nil {
		return nil, s.fail(StepDeleteSelection, done, err, p)
	}

	s.Log.Info("payment settled",
		zap.String("email", p.Email),
		zap.String("transaction_id", p.TransactionID),
		zap.Any("payment_id", out.InsertResult.InsertedID),
	)
	return &out, nil
}

// fail hanya mencatat; tidak ada rollback untuk langkah yang sudah jalan.
func (s *SettlementService) fail(step string, done []string, err error, p *model.PaymentModel) error {
	s.Log.Error("payment settlement incomplete",
		zap.String("failed_step", step),
		zap.Strings("completed_steps", done),
		zap.String("email", p.Email),
		zap.String("transaction_id", p.TransactionID),
		zap.Error(err),
	)
	return &StepError{Step: step, Completed: done, Err: err}
}
