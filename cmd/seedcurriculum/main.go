// Command seedcurriculum converts a curriculum Excel workbook into a SQL seed
// file for one school. The workbook's first sheet lists one topic per row:
// Grade, Section, Subject, Topic, Part, Description. Header on row 1.
// Usage: go run ./cmd/seedcurriculum <school-id> [curriculum.xlsx]
// Output: db/seeds/curriculum.sql
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const batchSize = 200

type classEntry struct {
	id      uuid.UUID
	name    string
	grade   int
	section string
}

type subjectEntry struct {
	id      uuid.UUID
	classID uuid.UUID
	name    string
}

type topicEntry struct {
	id          uuid.UUID
	subjectID   uuid.UUID
	name        string
	description string
	partNumber  int
}

type curriculum struct {
	classes  []classEntry
	subjects []subjectEntry
	topics   []topicEntry
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		fmt.Println("Usage: seedcurriculum <school-id> [curriculum.xlsx]")
		os.Exit(1)
	}

	schoolID, err := uuid.Parse(os.Args[1])
	if err != nil {
		return fmt.Errorf("invalid school ID: %w", err)
	}

	xlsxPath := "curriculum.xlsx"
	if len(os.Args) > 2 {
		xlsxPath = os.Args[2]
	}
	outPath := "db/seeds/curriculum.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	cur, err := parseCurriculumSheet(f)
	if err != nil {
		return fmt.Errorf("parse curriculum sheet: %w", err)
	}
	log.Printf("Parsed %d classes, %d subjects, %d topics",
		len(cur.classes), len(cur.subjects), len(cur.topics))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	if err := writeSeed(out, schoolID, cur); err != nil {
		return fmt.Errorf("write seed: %w", err)
	}

	log.Printf("Generated seed for school %s in %s", schoolID, outPath)
	return nil
}

// parseCurriculumSheet reads the first sheet. Columns: A(0)=grade,
// B(1)=section, C(2)=subject, D(3)=topic, E(4)=part number (optional),
// F(5)=description (optional). Data starts at row index 1.
func parseCurriculumSheet(f *excelize.File) (*curriculum, error) {
	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	cur := &curriculum{}
	classIDs := make(map[string]uuid.UUID)
	subjectIDs := make(map[string]uuid.UUID)

	for i := 1; i < len(rows); i++ {
		row := rows[i]

		gradeStr := strings.TrimSpace(cellVal(row, 0))
		subjectName := strings.TrimSpace(cellVal(row, 2))
		topicName := strings.TrimSpace(cellVal(row, 3))
		if gradeStr == "" || subjectName == "" || topicName == "" {
			continue
		}

		grade, err := strconv.Atoi(gradeStr)
		if err != nil {
			log.Printf("row %d: skipping, bad grade %q", i+1, gradeStr)
			continue
		}
		section := strings.TrimSpace(cellVal(row, 1))

		classKey := fmt.Sprintf("%d|%s", grade, section)
		classID, ok := classIDs[classKey]
		if !ok {
			classID = uuid.New()
			classIDs[classKey] = classID
			name := fmt.Sprintf("Class %d", grade)
			if section != "" {
				name = fmt.Sprintf("Class %d-%s", grade, section)
			}
			cur.classes = append(cur.classes, classEntry{
				id:      classID,
				name:    name,
				grade:   grade,
				section: section,
			})
		}

		subjectKey := classKey + "|" + subjectName
		subjectID, ok := subjectIDs[subjectKey]
		if !ok {
			subjectID = uuid.New()
			subjectIDs[subjectKey] = subjectID
			cur.subjects = append(cur.subjects, subjectEntry{
				id:      subjectID,
				classID: classID,
				name:    subjectName,
			})
		}

		part := 0
		if partStr := strings.TrimSpace(cellVal(row, 4)); partStr != "" {
			if part, err = strconv.Atoi(partStr); err != nil {
				log.Printf("row %d: skipping, bad part number %q", i+1, partStr)
				continue
			}
		}

		cur.topics = append(cur.topics, topicEntry{
			id:          uuid.New(),
			subjectID:   subjectID,
			name:        topicName,
			description: strings.TrimSpace(cellVal(row, 5)),
			partNumber:  part,
		})
	}
	return cur, nil
}

func writeSeed(out *os.File, schoolID uuid.UUID, cur *curriculum) error {
	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- Curriculum seed data generated from Excel.",
		fmt.Sprintf("-- School %s: %d classes, %d subjects, %d topics.",
			schoolID, len(cur.classes), len(cur.subjects), len(cur.topics)),
		"-- Run: make seed-curriculum",
		"BEGIN;",
		"",
	} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
	}

	// Seeded rows are attributed to the school's oldest admin.
	adminExpr := fmt.Sprintf(
		"(SELECT id FROM users WHERE school_id = '%s' AND role = 'admin' ORDER BY created_at LIMIT 1)",
		schoolID)

	for _, c := range cur.classes {
		stmt := fmt.Sprintf(
			"INSERT INTO classes (id, school_id, name, grade, section, created_by) VALUES ('%s', '%s', '%s', %d, '%s', %s)\n"+
				"  ON CONFLICT (school_id, name) DO NOTHING;",
			c.id, schoolID, escapeSQL(c.name), c.grade, escapeSQL(c.section), adminExpr)
		if werr := w(stmt); werr != nil {
			return fmt.Errorf("write class: %w", werr)
		}
	}
	if werr := w(""); werr != nil {
		return werr
	}

	for _, s := range cur.subjects {
		stmt := fmt.Sprintf(
			"INSERT INTO subjects (id, school_id, class_id, name) VALUES ('%s', '%s', '%s', '%s')\n"+
				"  ON CONFLICT (school_id, class_id, name) DO NOTHING;",
			s.id, schoolID, s.classID, escapeSQL(s.name))
		if werr := w(stmt); werr != nil {
			return fmt.Errorf("write subject: %w", werr)
		}
	}
	if werr := w(""); werr != nil {
		return werr
	}

	for i := 0; i < len(cur.topics); i += batchSize {
		end := i + batchSize
		if end > len(cur.topics) {
			end = len(cur.topics)
		}
		if err := writeTopicBatch(out, schoolID, adminExpr, cur.topics[i:end]); err != nil {
			return fmt.Errorf("write topic batch at offset %d: %w", i, err)
		}
	}

	for _, line := range []string{"", "COMMIT;"} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write footer: %w", werr)
		}
	}
	return nil
}

func writeTopicBatch(out *os.File, schoolID uuid.UUID, adminExpr string, batch []topicEntry) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO topics (id, school_id, subject_id, name, description, part_number, created_by) VALUES\n")

	for i := range batch {
		t := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s', '%s', %d, %s)",
			t.id, schoolID, t.subjectID, escapeSQL(t.name), escapeSQL(t.description), t.partNumber, adminExpr)
	}

	b.WriteString("\nON CONFLICT (id) DO NOTHING;\n")

	_, err := out.WriteString(b.String())
	return err
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
