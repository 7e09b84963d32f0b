package importer

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ipshare911/Payroll-Management-System/internal/events"
	importererrors "github.com/ipshare911/Payroll-Management-System/internal/importer/errors"
	"github.com/ipshare911/Payroll-Management-System/internal/messaging/kafka"
	"github.com/ipshare911/Payroll-Management-System/internal/salary"
	"github.com/ipshare911/Payroll-Management-System/internal/shared/contextutil"
)

type Service interface {
	Import(ctx context.Context, fileName string, data []byte) (*ImportResultResponse, error)
}

type service struct {
	db          *sql.DB
	store       salary.Store
	outbox      kafka.OutboxRepository
	defaultYear int
	inFlight    atomic.Bool
}

func NewService(db *sql.DB, store salary.Store, defaultYear int) Service {
	return &service{db: db, store: store, defaultYear: defaultYear}
}

// NewServiceWithOutbox additionally records a batch-imported outbox event in
// the same transaction as the batch insert.
func NewServiceWithOutbox(db *sql.DB, store salary.Store, outbox kafka.OutboxRepository, defaultYear int) Service {
	return &service{db: db, store: store, outbox: outbox, defaultYear: defaultYear}
}

type parseStats struct {
	skippedRows     int
	malformedMonths int
}

func (s *service) Import(ctx context.Context, fileName string, data []byte) (*ImportResultResponse, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx", ".xlsm":
	default:
		return nil, importererrors.ErrUnsupportedFileType
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, importererrors.ErrImportInProgress
	}
	defer s.inFlight.Store(false)

	grid, err := readWorkbookGrid(data)
	if err != nil {
		return nil, err
	}

	records, stats, err := s.parseGrid(ctx, grid)
	if err != nil {
		return nil, err
	}

	batchID := uuid.New().String()
	if err := s.commitBatch(ctx, batchID, fileName, records, stats); err != nil {
		return nil, err
	}

	contextutil.GetLogger(ctx, zap.L()).Info("salary batch imported",
		zap.String("batch_id", batchID),
		zap.String("file_name", fileName),
		zap.Int("imported_records", len(records)),
		zap.Int("skipped_rows", stats.skippedRows),
		zap.Int("malformed_months", stats.malformedMonths),
	)

	return &ImportResultResponse{
		BatchID:         batchID,
		FileName:        fileName,
		ImportedRecords: len(records),
		SkippedRows:     stats.skippedRows,
		MalformedMonths: stats.malformedMonths,
	}, nil
}

// readWorkbookGrid opens the workbook and returns the rows of the first sheet
// that holds any data. Raw cell values are requested so date cells surface as
// their underlying serial numbers instead of locale-formatted strings.
func readWorkbookGrid(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, importererrors.ErrUnreadableWorkbook
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			continue
		}
		if len(rows) > 0 {
			return rows, nil
		}
	}
	return nil, importererrors.ErrEmptyWorkbook
}

func (s *service) parseGrid(ctx context.Context, grid [][]string) ([]salary.SalaryRecord, parseStats, error) {
	var stats parseStats

	headerIdx, headerMap := locateHeader(grid)
	if headerIdx < 0 {
		return nil, stats, importererrors.ErrHeaderNotFound
	}

	logger := contextutil.GetLogger(ctx, zap.L())
	records := make([]salary.SalaryRecord, 0, len(grid)-headerIdx-1)

	for i := headerIdx + 1; i < len(grid); i++ {
		row := grid[i]
		sequence := i - headerIdx

		name := lookupCell(row, headerMap, salary.LabelName)
		if name == "" {
			stats.skippedRows++
			continue
		}

		department := lookupCell(row, headerMap, salary.LabelDepartment)
		if department == "" {
			department = salary.DefaultDepartment
		}

		month, recognized := normalizeMonth(lookupCell(row, headerMap, salary.LabelMonth), s.defaultYear)
		if !recognized {
			stats.malformedMonths++
			logger.Warn("unrecognized month value kept verbatim",
				zap.Int("row", i+1),
				zap.String("value", month),
			)
		}

		record := salary.SalaryRecord{
			ID:           uuid.New(),
			Sequence:     sequence,
			EmployeeName: name,
			Department:   department,
			Month:        month,
		}
		for _, field := range salary.Components {
			field.Set(&record, resolveComponent(row, headerMap, field))
		}
		salary.ComputeTotals(&record)

		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, stats, importererrors.ErrNoValidRows
	}
	return records, stats, nil
}

// locateHeader scans the top rows for one containing a 姓名 or 部门 cell and
// builds a label-to-column index from it.
func locateHeader(grid [][]string) (int, map[string]int) {
	scan := len(grid)
	if scan > headerScanWindow {
		scan = headerScanWindow
	}

	for i := 0; i < scan; i++ {
		found := false
		for _, cell := range grid[i] {
			t := strings.TrimSpace(cell)
			if t == salary.LabelName || t == salary.LabelDepartment {
				found = true
				break
			}
		}
		if !found {
			continue
		}

		headerMap := make(map[string]int, len(grid[i]))
		for idx, cell := range grid[i] {
			if t := strings.TrimSpace(cell); t != "" {
				headerMap[t] = idx
			}
		}
		return i, headerMap
	}
	return -1, nil
}

func lookupCell(row []string, headerMap map[string]int, label string) string {
	idx, ok := headerMap[label]
	if !ok {
		return ""
	}
	return cellAt(row, idx)
}

// resolveComponent reads a pay component through its header synonyms. The
// first synonym whose column exists wins, even when that cell is blank.
func resolveComponent(row []string, headerMap map[string]int, field salary.FieldSpec) float64 {
	for _, label := range field.Synonyms {
		if idx, ok := headerMap[label]; ok {
			return parseAmount(cellAt(row, idx))
		}
	}
	return 0
}

func (s *service) commitBatch(ctx context.Context, batchID, fileName string, records []salary.SalaryRecord, stats parseStats) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.store.WithTx(tx).AddBatch(ctx, records); err != nil {
		return err
	}

	if s.outbox != nil {
		payload, err := json.Marshal(events.SalaryBatchImportedEvent{
			EventType:   "salary.batch.imported",
			BatchID:     batchID,
			FileName:    fileName,
			RecordCount: len(records),
			SkippedRows: stats.skippedRows,
			ImportedBy:  contextutil.GetUser(ctx),
			OccurredAt:  time.Now().UTC(),
		})
		if err != nil {
			return err
		}

		event := kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     contextutil.GetRequestID(ctx),
			AggregateType: "salary_batch",
			AggregateID:   batchID,
			EventType:     "salary.batch.imported",
			Topic:         events.SalaryBatchImportedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}
		if err := kafka.ValidateOutboxEvent(event); err != nil {
			return err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			return err
		}
	}

	return tx.Commit()
}
