package workbook

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/netops-tools/te-reporter/pkg/models/domain"
)

// Reader loads the account-group list from the first sheet of an xlsx file.
// The sheet must carry accountGroupName and aid columns; extra columns are
// ignored and row order is preserved.
type Reader interface {
	AccountGroups(ctx context.Context) ([]domain.AccountGroup, error)
}

type accountsReader struct {
	path string
}

func NewReader(path string) Reader {
	return &accountsReader{path: path}
}

func (r *accountsReader) AccountGroups(ctx context.Context) ([]domain.AccountGroup, error) {
	file, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, &domain.ConfigError{
			Reason: fmt.Sprintf("cannot open accounts file %s", r.path),
			Err:    err,
		}
	}
	defer func() {
		if err := file.Close(); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to close accounts file")
		}
	}()

	sheetList := file.GetSheetList()
	if len(sheetList) == 0 {
		return nil, &domain.ConfigError{
			Reason: fmt.Sprintf("accounts file %s has no sheets", r.path),
		}
	}

	rows, err := file.GetRows(sheetList[0])
	if err != nil {
		return nil, &domain.ConfigError{
			Reason: fmt.Sprintf("cannot read accounts file %s", r.path),
			Err:    err,
		}
	}

	nameCol, aidCol := -1, -1
	if len(rows) > 0 {
		for i, header := range rows[0] {
			switch strings.TrimSpace(header) {
			case "accountGroupName":
				nameCol = i
			case "aid":
				aidCol = i
			}
		}
	}
	if nameCol < 0 || aidCol < 0 {
		return nil, &domain.ConfigError{
			Reason: fmt.Sprintf("accounts file %s must contain accountGroupName and aid columns", r.path),
		}
	}

	var groups []domain.AccountGroup
	for i, row := range rows[1:] {
		name := cellAt(row, nameCol)
		aid := cellAt(row, aidCol)
		if name == "" && aid == "" {
			continue
		}
		if name == "" || aid == "" {
			return nil, &domain.ConfigError{
				Reason: fmt.Sprintf("accounts file %s row %d: accountGroupName and aid are both required", r.path, i+2),
			}
		}
		groups = append(groups, domain.AccountGroup{Name: name, AID: aid})
	}
	return groups, nil
}

// cellAt tolerates the short rows excelize returns when trailing cells are
// empty.
func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
