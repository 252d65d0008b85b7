package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"shiksha/internal/section"
)

// AssessmentXLSX builds a workbook with one sheet per assessment section.
// The caller owns the returned file and must Close it.
func AssessmentXLSX(topicName string, sections []section.Section) (*excelize.File, error) {
	f := excelize.NewFile()

	header := []string{"Question #", "Question", "Option A", "Option B", "Option C", "Option D", "Answer", "Explanation"}
	for i, sec := range sections {
		name := sheetName(sec.Title, i)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("renaming sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, fmt.Errorf("adding sheet %q: %w", name, err)
			}
		}

		if err := writeRow(f, name, 1, header); err != nil {
			return nil, err
		}
		for r, q := range sec.Questions {
			row := make([]string, len(header))
			row[0] = fmt.Sprintf("%d", q.ID)
			row[1] = q.Text
			for j, opt := range q.Options {
				if j >= 4 {
					break
				}
				row[2+j] = opt.Text
			}
			row[6] = q.Answer
			row[7] = q.Explanation
			if err := writeRow(f, name, r+2, row); err != nil {
				return nil, err
			}
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// WorksheetsXLSX builds a workbook with one sheet per worksheet. Instructions
// land in the first row, activities follow, and the answer key trails at the
// bottom when present.
func WorksheetsXLSX(topicName string, sheets []section.Worksheet) (*excelize.File, error) {
	f := excelize.NewFile()

	for i, sheet := range sheets {
		name := sheetName(sheet.Title, i)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("renaming sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, fmt.Errorf("adding sheet %q: %w", name, err)
			}
		}

		rowNum := 1
		if sheet.Instructions != "" {
			if err := writeRow(f, name, rowNum, []string{"Instructions", sheet.Instructions}); err != nil {
				return nil, err
			}
			rowNum += 2
		}

		if err := writeRow(f, name, rowNum, []string{"Activity #", "Type", "Question", "Answer"}); err != nil {
			return nil, err
		}
		rowNum++
		for j, act := range sheet.Activities {
			row := []string{fmt.Sprintf("%d", j+1), act.Type, act.Question, act.Answer}
			if err := writeRow(f, name, rowNum, row); err != nil {
				return nil, err
			}
			rowNum++
		}

		if sheet.AnswerKey != "" {
			rowNum++
			if err := writeRow(f, name, rowNum, []string{"Answer Key", sheet.AnswerKey}); err != nil {
				return nil, err
			}
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("writing cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

// forbiddenSheetChars strips the characters Excel rejects in sheet names.
var forbiddenSheetChars = strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", " ", "]", " ")

// sheetName makes a title safe for use as an Excel sheet name. Excel caps
// sheet names at 31 chars and forbids a handful of characters.
func sheetName(title string, index int) string {
	if title == "" {
		return fmt.Sprintf("Sheet %d", index+1)
	}
	title = forbiddenSheetChars.Replace(title)
	if len(title) > 31 {
		title = title[:31]
	}
	return title
}
