package reservation_test

import (
	"context"
	"errors"
	"testing"

	appreservation "github.com/heytrack/heytrack-backend/application/reservation"
	"github.com/heytrack/heytrack-backend/constant"
	ingredientmocks "github.com/heytrack/heytrack-backend/mocks/repository/ingredient"
	reservationmocks "github.com/heytrack/heytrack-backend/mocks/repository/reservation"
	stockledgermocks "github.com/heytrack/heytrack-backend/mocks/repository/stockledger"
	txmocks "github.com/heytrack/heytrack-backend/mocks/repository/tx"
	"github.com/heytrack/heytrack-backend/model"
	cerr "github.com/heytrack/heytrack-backend/utils/errors"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

func TestReservationApp_CheckAvailability(t *testing.T) {
	type fields struct {
		txRepo          *txmocks.TxRepository
		ingredientRepo  *ingredientmocks.IngredientRepository
		reservationRepo *reservationmocks.ReservationRepository
		ledgerRepo      *stockledgermocks.StockLedgerRepository
	}
	type args struct {
		ctx    context.Context
		userID uint64
		items  []model.IngredientRequirement
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.AvailabilityResult
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: all items available",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				ingredientRepo:  ingredientmocks.NewIngredientRepository(t),
				reservationRepo: reservationmocks.NewReservationRepository(t),
				ledgerRepo:      stockledgermocks.NewStockLedgerRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				items: []model.IngredientRequirement{
					{IngredientID: 10, Quantity: 2.5},
					{IngredientID: 11, Quantity: 1},
				},
			},
			mockCall: func(f fields) {
				f.ingredientRepo.On("GetByID", mock.Anything, uint64(10), uint64(1)).Return(&model.Ingredient{
					ID: 10, CurrentStock: 5, ReservedStock: 1,
				}, nil).Once()
				f.ingredientRepo.On("GetByID", mock.Anything, uint64(11), uint64(1)).Return(&model.Ingredient{
					ID: 11, CurrentStock: 3, ReservedStock: 0,
				}, nil).Once()
			},
			want: &model.AvailabilityResult{
				Available:         true,
				InsufficientItems: []model.InsufficientItem{},
			},
		},
		{
			name: "success: reports every shortfall",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				ingredientRepo:  ingredientmocks.NewIngredientRepository(t),
				reservationRepo: reservationmocks.NewReservationRepository(t),
				ledgerRepo:      stockledgermocks.NewStockLedgerRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				items: []model.IngredientRequirement{
					{IngredientID: 10, Quantity: 5},
					{IngredientID: 11, Quantity: 2},
				},
			},
			mockCall: func(f fields) {
				f.ingredientRepo.On("GetByID", mock.Anything, uint64(10), uint64(1)).Return(&model.Ingredient{
					ID: 10, CurrentStock: 5, ReservedStock: 2,
				}, nil).Once()
				f.ingredientRepo.On("GetByID", mock.Anything, uint64(11), uint64(1)).Return(&model.Ingredient{
					ID: 11, CurrentStock: 1, ReservedStock: 0,
				}, nil).Once()
			},
			want: &model.AvailabilityResult{
				Available: false,
				InsufficientItems: []model.InsufficientItem{
					{IngredientID: 10, Requested: 5, Available: 3},
					{IngredientID: 11, Requested: 2, Available: 1},
				},
			},
		},
		{
			name: "success: negative availability clamped to zero",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				ingredientRepo:  ingredientmocks.NewIngredientRepository(t),
				reservationRepo: reservationmocks.NewReservationRepository(t),
				ledgerRepo:      stockledgermocks.NewStockLedgerRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				items: []model.IngredientRequirement{
					{IngredientID: 10, Quantity: 1},
				},
			},
			mockCall: func(f fields) {
				f.ingredientRepo.On("GetByID", mock.Anything, uint64(10), uint64(1)).Return(&model.Ingredient{
					ID: 10, CurrentStock: 2, ReservedStock: 3,
				}, nil).Once()
			},
			want: &model.AvailabilityResult{
				Available: false,
				InsufficientItems: []model.InsufficientItem{
					{IngredientID: 10, Requested: 1, Available: 0},
				},
			},
		},
		{
			name: "error: empty items",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				ingredientRepo:  ingredientmocks.NewIngredientRepository(t),
				reservationRepo: reservationmocks.NewReservationRepository(t),
				ledgerRepo:      stockledgermocks.NewStockLedgerRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				items:  []model.IngredientRequirement{},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: ingredient not found",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				ingredientRepo:  ingredientmocks.NewIngredientRepository(t),
				reservationRepo: reservationmocks.NewReservationRepository(t),
				ledgerRepo:      stockledgermocks.NewStockLedgerRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				items: []model.IngredientRequirement{
					{IngredientID: 99, Quantity: 1},
				},
			},
			mockCall: func(f fields) {
				f.ingredientRepo.On("GetByID", mock.Anything, uint64(99), uint64(1)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: repository failure",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				ingredientRepo:  ingredientmocks.NewIngredientRepository(t),
				reservationRepo: reservationmocks.NewReservationRepository(t),
				ledgerRepo:      stockledgermocks.NewStockLedgerRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				items: []model.IngredientRequirement{
					{IngredientID: 10, Quantity: 1},
				},
			},
			mockCall: func(f fields) {
				f.ingredientRepo.On("GetByID", mock.Anything, uint64(10), uint64(1)).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appreservation.NewReservationApp(tt.fields.txRepo, tt.fields.ingredientRepo, tt.fields.reservationRepo, tt.fields.ledgerRepo)

			got, err := app.CheckAvailability(tt.args.ctx, tt.args.userID, tt.args.items)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckAvailability() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Available != tt.want.Available {
				t.Fatalf("Available = %v, want %v", got.Available, tt.want.Available)
			}
			if len(got.InsufficientItems) != len(tt.want.InsufficientItems) {
				t.Fatalf("InsufficientItems = %v, want %v", got.InsufficientItems, tt.want.InsufficientItems)
			}
			for i, item := range got.InsufficientItems {
				if item != tt.want.InsufficientItems[i] {
					t.Fatalf("InsufficientItems[%d] = %+v, want %+v", i, item, tt.want.InsufficientItems[i])
				}
			}
		})
	}
}

func TestReservationApp_ReserveForOrder(t *testing.T) {
	type fields struct {
		txRepo          *txmocks.TxRepository
		ingredientRepo  *ingredientmocks.IngredientRepository
		reservationRepo *reservationmocks.ReservationRepository
		ledgerRepo      *stockledgermocks.StockLedgerRepository
	}
	type args struct {
		ctx     context.Context
		userID  uint64
		orderID uint64
		items   []model.IngredientRequirement
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantIDs  []uint64
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: reserves every item",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				ingredientRepo:  ingredientmocks.NewIngredientRepository(t),
				reservationRepo: reservationmocks.NewReservationRepository(t),
				ledgerRepo:      stockledgermocks.NewStockLedgerRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				userID:  1,
				orderID: 7,
				items: []model.IngredientRequirement{
					{IngredientID: 10, Quantity: 2},
					{IngredientID: 11, Quantity: 0.5},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.ingredientRepo.On("GetByIDTx", mock.Anything, tx, uint64(10), uint64(1)).Return(&model.Ingredient{
					ID: 10, CurrentStock: 10, ReservedStock: 0,
				}, nil).Once()
				f.ingredientRepo.On("GetByIDTx", mock.Anything, tx, uint64(11), uint64(1)).Return(&model.Ingredient{
					ID: 11, CurrentStock: 1, ReservedStock: 0,
				}, nil).Once()

				f.ingredientRepo.On("ReserveStockTx", mock.Anything, tx, uint64(10), uint64(1), 2.0).Return(true, nil).Once()
				f.ingredientRepo.On("ReserveStockTx", mock.Anything, tx, uint64(11), uint64(1), 0.5).Return(true, nil).Once()

				f.reservationRepo.On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(r *model.StockReservation) bool {
					return r.OrderID == 7 && r.IngredientID == 10 && r.Quantity == 2 && r.Status == constant.ReservationStatusActive
				})).Return(uint64(100), nil).Once()
				f.reservationRepo.On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(r *model.StockReservation) bool {
					return r.OrderID == 7 && r.IngredientID == 11 && r.Quantity == 0.5 && r.Status == constant.ReservationStatusActive
				})).Return(uint64(101), nil).Once()
			},
			wantIDs: []uint64{100, 101},
		},
		{
			name: "error: shortfall rolls back everything",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				ingredientRepo:  ingredientmocks.NewIngredientRepository(t),
				reservationRepo: reservationmocks.NewReservationRepository(t),
				ledgerRepo:      stockledgermocks.NewStockLedgerRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				userID:  1,
				orderID: 7,
				items: []model.IngredientRequirement{
					{IngredientID: 10, Quantity: 2},
					{IngredientID: 11, Quantity: 5},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.ingredientRepo.On("GetByIDTx", mock.Anything, tx, uint64(10), uint64(1)).Return(&model.Ingredient{
					ID: 10, CurrentStock: 10, ReservedStock: 0,
				}, nil).Once()
				f.ingredientRepo.On("GetByIDTx", mock.Anything, tx, uint64(11), uint64(1)).Return(&model.Ingredient{
					ID: 11, CurrentStock: 4, ReservedStock: 2,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: lost availability race on conditional update",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				ingredientRepo:  ingredientmocks.NewIngredientRepository(t),
				reservationRepo: reservationmocks.NewReservationRepository(t),
				ledgerRepo:      stockledgermocks.NewStockLedgerRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				userID:  1,
				orderID: 7,
				items: []model.IngredientRequirement{
					{IngredientID: 10, Quantity: 2},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.ingredientRepo.On("GetByIDTx", mock.Anything, tx, uint64(10), uint64(1)).Return(&model.Ingredient{
					ID: 10, CurrentStock: 10, ReservedStock: 0,
				}, nil).Once()

				f.ingredientRepo.On("ReserveStockTx", mock.Anything, tx, uint64(10), uint64(1), 2.0).Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: BeginTx returns error",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				ingredientRepo:  ingredientmocks.NewIngredientRepository(t),
				reservationRepo: reservationmocks.NewReservationRepository(t),
				ledgerRepo:      stockledgermocks.NewStockLedgerRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				userID:  1,
				orderID: 7,
				items: []model.IngredientRequirement{
					{IngredientID: 10, Quantity: 2},
				},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appreservation.NewReservationApp(tt.fields.txRepo, tt.fields.ingredientRepo, tt.fields.reservationRepo, tt.fields.ledgerRepo)

			got, err := app.ReserveForOrder(tt.args.ctx, tt.args.userID, tt.args.orderID, tt.args.items)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReserveForOrder() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if len(got) != len(tt.wantIDs) {
				t.Fatalf("ReserveForOrder() ids = %v, want %v", got, tt.wantIDs)
			}
			for i, id := range got {
				if id != tt.wantIDs[i] {
					t.Fatalf("ReserveForOrder() ids[%d] = %d, want %d", i, id, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestReservationApp_ReserveForOrder_ShortfallDetails(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	ingredientRepo := ingredientmocks.NewIngredientRepository(t)
	reservationRepo := reservationmocks.NewReservationRepository(t)
	ledgerRepo := stockledgermocks.NewStockLedgerRepository(t)

	tx := &sqlx.Tx{}
	txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	txRepo.On("RollbackTx", tx).Return(nil).Once()

	ingredientRepo.On("GetByIDTx", mock.Anything, tx, uint64(10), uint64(1)).Return(&model.Ingredient{
		ID: 10, CurrentStock: 3, ReservedStock: 1,
	}, nil).Once()
	ingredientRepo.On("GetByIDTx", mock.Anything, tx, uint64(11), uint64(1)).Return(&model.Ingredient{
		ID: 11, CurrentStock: 0, ReservedStock: 0,
	}, nil).Once()

	app := appreservation.NewReservationApp(txRepo, ingredientRepo, reservationRepo, ledgerRepo)
	_, err := app.ReserveForOrder(context.Background(), 1, 7, []model.IngredientRequirement{
		{IngredientID: 10, Quantity: 5},
		{IngredientID: 11, Quantity: 2},
	})
	if err == nil {
		t.Fatal("ReserveForOrder() expected error")
	}

	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	details, ok := ce.Details().([]model.InsufficientItem)
	if !ok {
		t.Fatalf("details type = %T, want []model.InsufficientItem", ce.Details())
	}
	if len(details) != 2 {
		t.Fatalf("details = %+v, want both shortfalls", details)
	}
	if details[0].IngredientID != 10 || details[0].Requested != 5 || details[0].Available != 2 {
		t.Fatalf("details[0] = %+v", details[0])
	}
	if details[1].IngredientID != 11 || details[1].Requested != 2 || details[1].Available != 0 {
		t.Fatalf("details[1] = %+v", details[1])
	}
}

func TestReservationApp_ReleaseForOrder(t *testing.T) {
	type fields struct {
		txRepo          *txmocks.TxRepository
		ingredientRepo  *ingredientmocks.IngredientRepository
		reservationRepo *reservationmocks.ReservationRepository
		ledgerRepo      *stockledgermocks.StockLedgerRepository
	}
	type args struct {
		ctx     context.Context
		userID  uint64
		orderID uint64
	}
	tests := []struct {
		name      string
		fields    fields
		args      args
		mockCall  func(f fields)
		wantCount int
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success: releases every active reservation",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				ingredientRepo:  ingredientmocks.NewIngredientRepository(t),
				reservationRepo: reservationmocks.NewReservationRepository(t),
				ledgerRepo:      stockledgermocks.NewStockLedgerRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				userID:  1,
				orderID: 7,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.reservationRepo.On("FindActiveByOrderTx", mock.Anything, tx, uint64(7), uint64(1)).Return([]model.StockReservation{
					{ID: 100, IngredientID: 10, Quantity: 2, Status: constant.ReservationStatusActive},
					{ID: 101, IngredientID: 11, Quantity: 0.5, Status: constant.ReservationStatusActive},
				}, nil).Once()

				f.reservationRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(100), constant.ReservationStatusActive, constant.ReservationStatusReleased).Return(nil).Once()
				f.reservationRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(101), constant.ReservationStatusActive, constant.ReservationStatusReleased).Return(nil).Once()

				f.ingredientRepo.On("ReleaseStockTx", mock.Anything, tx, uint64(10), uint64(1), 2.0).Return(nil).Once()
				f.ingredientRepo.On("ReleaseStockTx", mock.Anything, tx, uint64(11), uint64(1), 0.5).Return(nil).Once()
			},
			wantCount: 2,
		},
		{
			name: "success: no active reservations releases zero rows",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				ingredientRepo:  ingredientmocks.NewIngredientRepository(t),
				reservationRepo: reservationmocks.NewReservationRepository(t),
				ledgerRepo:      stockledgermocks.NewStockLedgerRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				userID:  1,
				orderID: 7,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.reservationRepo.On("FindActiveByOrderTx", mock.Anything, tx, uint64(7), uint64(1)).Return([]model.StockReservation{}, nil).Once()
			},
			wantCount: 0,
		},
		{
			name: "error: invalid transition from repository",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				ingredientRepo:  ingredientmocks.NewIngredientRepository(t),
				reservationRepo: reservationmocks.NewReservationRepository(t),
				ledgerRepo:      stockledgermocks.NewStockLedgerRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				userID:  1,
				orderID: 7,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.reservationRepo.On("FindActiveByOrderTx", mock.Anything, tx, uint64(7), uint64(1)).Return([]model.StockReservation{
					{ID: 100, IngredientID: 10, Quantity: 2, Status: constant.ReservationStatusActive},
				}, nil).Once()

				f.reservationRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(100), constant.ReservationStatusActive, constant.ReservationStatusReleased).
					Return(cerr.SetCustomError(constant.ErrInvalidTransition)).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
		{
			name: "error: find active reservations fails",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				ingredientRepo:  ingredientmocks.NewIngredientRepository(t),
				reservationRepo: reservationmocks.NewReservationRepository(t),
				ledgerRepo:      stockledgermocks.NewStockLedgerRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				userID:  1,
				orderID: 7,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.reservationRepo.On("FindActiveByOrderTx", mock.Anything, tx, uint64(7), uint64(1)).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appreservation.NewReservationApp(tt.fields.txRepo, tt.fields.ingredientRepo, tt.fields.reservationRepo, tt.fields.ledgerRepo)

			got, err := app.ReleaseForOrder(tt.args.ctx, tt.args.userID, tt.args.orderID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReleaseForOrder() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got != tt.wantCount {
				t.Fatalf("ReleaseForOrder() count = %d, want %d", got, tt.wantCount)
			}
		})
	}
}

func TestReservationApp_ConsumeForOrder(t *testing.T) {
	type fields struct {
		txRepo          *txmocks.TxRepository
		ingredientRepo  *ingredientmocks.IngredientRepository
		reservationRepo *reservationmocks.ReservationRepository
		ledgerRepo      *stockledgermocks.StockLedgerRepository
	}
	type args struct {
		ctx     context.Context
		userID  uint64
		orderID uint64
	}
	tests := []struct {
		name      string
		fields    fields
		args      args
		mockCall  func(f fields)
		wantCount int
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success: consumes reservations and writes ledger entries",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				ingredientRepo:  ingredientmocks.NewIngredientRepository(t),
				reservationRepo: reservationmocks.NewReservationRepository(t),
				ledgerRepo:      stockledgermocks.NewStockLedgerRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				userID:  1,
				orderID: 7,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.reservationRepo.On("FindActiveByOrderTx", mock.Anything, tx, uint64(7), uint64(1)).Return([]model.StockReservation{
					{ID: 100, IngredientID: 10, Quantity: 2, Status: constant.ReservationStatusActive},
				}, nil).Once()

				f.reservationRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(100), constant.ReservationStatusActive, constant.ReservationStatusConsumed).Return(nil).Once()

				f.ingredientRepo.On("ConsumeStockTx", mock.Anything, tx, uint64(10), uint64(1), 2.0).Return(8.0, nil).Once()

				f.ledgerRepo.On("AppendTx", mock.Anything, tx, mock.MatchedBy(func(e *model.StockLedgerEntry) bool {
					return e.IngredientID == 10 &&
						e.QuantityBefore == 10 &&
						e.QuantityAfter == 8 &&
						e.QuantityChanged == -2 &&
						e.ChangeType == constant.StockChangeDecrease &&
						e.ReferenceID == 7 &&
						e.ReferenceType == constant.StockReferenceOrderConsumption
				})).Return(nil).Once()
			},
			wantCount: 1,
		},
		{
			name: "success: retry consumes zero rows",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				ingredientRepo:  ingredientmocks.NewIngredientRepository(t),
				reservationRepo: reservationmocks.NewReservationRepository(t),
				ledgerRepo:      stockledgermocks.NewStockLedgerRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				userID:  1,
				orderID: 7,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.reservationRepo.On("FindActiveByOrderTx", mock.Anything, tx, uint64(7), uint64(1)).Return([]model.StockReservation{}, nil).Once()
			},
			wantCount: 0,
		},
		{
			name: "error: consume stock fails",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				ingredientRepo:  ingredientmocks.NewIngredientRepository(t),
				reservationRepo: reservationmocks.NewReservationRepository(t),
				ledgerRepo:      stockledgermocks.NewStockLedgerRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				userID:  1,
				orderID: 7,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.reservationRepo.On("FindActiveByOrderTx", mock.Anything, tx, uint64(7), uint64(1)).Return([]model.StockReservation{
					{ID: 100, IngredientID: 10, Quantity: 2, Status: constant.ReservationStatusActive},
				}, nil).Once()

				f.reservationRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(100), constant.ReservationStatusActive, constant.ReservationStatusConsumed).Return(nil).Once()

				f.ingredientRepo.On("ConsumeStockTx", mock.Anything, tx, uint64(10), uint64(1), 2.0).Return(0.0, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appreservation.NewReservationApp(tt.fields.txRepo, tt.fields.ingredientRepo, tt.fields.reservationRepo, tt.fields.ledgerRepo)

			got, err := app.ConsumeForOrder(tt.args.ctx, tt.args.userID, tt.args.orderID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ConsumeForOrder() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got != tt.wantCount {
				t.Fatalf("ConsumeForOrder() count = %d, want %d", got, tt.wantCount)
			}
		})
	}
}
