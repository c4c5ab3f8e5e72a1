package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"classadmin/internal/entity"
)

// ClassroomStore persists classroom records. Update and Delete report
// false when the id does not exist, leaving the store unchanged.
type ClassroomStore interface {
	Create(name, location string, capacity int, equipment map[string]bool) (int, error)
	Get(id int) (*entity.Classroom, error)
	List() ([]*entity.Classroom, error)
	Update(id int, name, location string, capacity int, equipment map[string]bool) (bool, error)
	Delete(id int) (bool, error)
}

type ClassroomRepository struct {
	db *sql.DB
}

func NewClassroomRepository(db *sql.DB) *ClassroomRepository {
	return &ClassroomRepository{db: db}
}

func (r *ClassroomRepository) Create(name, location string, capacity int, equipment map[string]bool) (int, error) {
	eq, err := marshalEquipment(equipment)
	if err != nil {
		return 0, err
	}

	var id int
	err = r.db.QueryRow(`
        INSERT INTO classrooms (name, location, capacity, equipment)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, name, location, capacity, eq).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create classroom: %w", err)
	}

	return id, nil
}

func (r *ClassroomRepository) Get(id int) (*entity.Classroom, error) {
	var c entity.Classroom
	var eq []byte

	err := r.db.QueryRow(`
        SELECT id, name, location, capacity, equipment
        FROM classrooms
        WHERE id = $1
    `, id).Scan(&c.ID, &c.Name, &c.Location, &c.Capacity, &eq)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get classroom: %w", err)
	}

	if err := unmarshalEquipment(eq, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *ClassroomRepository) List() ([]*entity.Classroom, error) {
	rows, err := r.db.Query(`
        SELECT id, name, location, capacity, equipment
        FROM classrooms
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to list classrooms: %w", err)
	}
	defer rows.Close()

	var classrooms []*entity.Classroom
	for rows.Next() {
		var c entity.Classroom
		var eq []byte

		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.Capacity, &eq); err != nil {
			return nil, fmt.Errorf("failed to scan classroom: %w", err)
		}
		if err := unmarshalEquipment(eq, &c); err != nil {
			return nil, err
		}

		classrooms = append(classrooms, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list classrooms: %w", err)
	}

	return classrooms, nil
}

func (r *ClassroomRepository) Update(id int, name, location string, capacity int, equipment map[string]bool) (bool, error) {
	eq, err := marshalEquipment(equipment)
	if err != nil {
		return false, err
	}

	res, err := r.db.Exec(`
        UPDATE classrooms
        SET name = $2, location = $3, capacity = $4, equipment = $5
        WHERE id = $1
    `, id, name, location, capacity, eq)
	if err != nil {
		return false, fmt.Errorf("failed to update classroom: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update classroom: %w", err)
	}

	return affected == 1, nil
}

func (r *ClassroomRepository) Delete(id int) (bool, error) {
	res, err := r.db.Exec(`
        DELETE FROM classrooms
        WHERE id = $1
    `, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete classroom: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete classroom: %w", err)
	}

	return affected == 1, nil
}

// Equipment is kept as a jsonb column holding only the flags that are
// present, e.g. {"projector": true}. Absent flags are absent keys.
func marshalEquipment(equipment map[string]bool) ([]byte, error) {
	if equipment == nil {
		equipment = map[string]bool{}
	}
	data, err := json.Marshal(equipment)
	if err != nil {
		return nil, fmt.Errorf("failed to encode equipment: %w", err)
	}
	return data, nil
}

func unmarshalEquipment(data []byte, c *entity.Classroom) error {
	c.Equipment = map[string]bool{}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &c.Equipment); err != nil {
		return fmt.Errorf("failed to decode equipment: %w", err)
	}
	return nil
}
