package repo

import (
	"context"
	"database/sql"
	"fmt"
)

// ThrowRecord is a stored cylinder/piston configuration. StageNumber is the
// stage the throw serves; several throws may share a stage.
type ThrowRecord struct {
	ID           int     `json:"id"`
	Number       int     `json:"number"`
	StageNumber  int     `json:"stage_number"`
	BoreMM       float64 `json:"bore_mm"`
	ClearancePct float64 `json:"clearance_pct"`
	VVCPPct      float64 `json:"vvcp_pct"`
	SACEPct      float64 `json:"sace_pct"`
	SAHEPct      float64 `json:"sahe_pct"`
}

type DriverRecord struct {
	ID                   int     `json:"id"`
	Kind                 string  `json:"kind"`
	NominalPowerKW       float64 `json:"nominal_power_kw"`
	EfficiencyPct        float64 `json:"efficiency_pct"`
	FuelConsumptionNm3h  float64 `json:"fuel_consumption_nm3_h"`
	ThermalEfficiencyPct float64 `json:"thermal_efficiency_pct"`
	PowerFactor          float64 `json:"power_factor"`
	TorqueNM             float64 `json:"torque_nm"`
}

// FrameRecord is one stored equipment configuration: the frame itself plus
// its throws and driver.
type FrameRecord struct {
	ID      int           `json:"id"`
	OwnerID int           `json:"owner_id"`
	Model   string        `json:"model"`
	RPM     float64       `json:"rpm"`
	Stages  int           `json:"stages"`
	Throws  []ThrowRecord `json:"throws"`
	Driver  *DriverRecord `json:"driver,omitempty"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)

	SaveFrame(ctx context.Context, frame FrameRecord) (int, error)
	ListFrames(ctx context.Context, ownerID int) ([]FrameRecord, error)
	GetFrame(ctx context.Context, ownerID, frameID int) (FrameRecord, error)
	DeleteFrame(ctx context.Context, ownerID, frameID int) error
}

var ErrNotFound = fmt.Errorf("not found")

type PostgresDB struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresDB {
	return &PostgresDB{db: db}
}

func (r *PostgresDB) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresDB) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

// SaveFrame stores a frame with its throws and driver in one transaction.
func (r *PostgresDB) SaveFrame(ctx context.Context, frame FrameRecord) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var frameID int
	err = tx.QueryRowContext(ctx,
		"INSERT INTO frames (owner_id, model, rpm, stages) VALUES ($1, $2, $3, $4) RETURNING id",
		frame.OwnerID, frame.Model, frame.RPM, frame.Stages).Scan(&frameID)
	if err != nil {
		return 0, err
	}

	for _, th := range frame.Throws {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO throws (frame_id, number, stage_number, bore_mm, clearance_pct, vvcp_pct, sace_pct, sahe_pct)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			frameID, th.Number, th.StageNumber, th.BoreMM, th.ClearancePct,
			th.VVCPPct, th.SACEPct, th.SAHEPct)
		if err != nil {
			return 0, err
		}
	}

	if frame.Driver != nil {
		d := frame.Driver
		_, err = tx.ExecContext(ctx,
			`INSERT INTO drivers (frame_id, kind, nominal_power_kw, efficiency_pct, fuel_consumption_nm3_h, thermal_efficiency_pct, power_factor, torque_nm)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			frameID, d.Kind, d.NominalPowerKW, d.EfficiencyPct,
			d.FuelConsumptionNm3h, d.ThermalEfficiencyPct, d.PowerFactor, d.TorqueNM)
		if err != nil {
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return frameID, nil
}

func (r *PostgresDB) ListFrames(ctx context.Context, ownerID int) ([]FrameRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, owner_id, model, rpm, stages FROM frames WHERE owner_id=$1 ORDER BY id", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var frames []FrameRecord
	for rows.Next() {
		var f FrameRecord
		if err := rows.Scan(&f.ID, &f.OwnerID, &f.Model, &f.RPM, &f.Stages); err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, rows.Err()
}

func (r *PostgresDB) GetFrame(ctx context.Context, ownerID, frameID int) (FrameRecord, error) {
	var f FrameRecord
	err := r.db.QueryRowContext(ctx,
		"SELECT id, owner_id, model, rpm, stages FROM frames WHERE id=$1 AND owner_id=$2",
		frameID, ownerID).Scan(&f.ID, &f.OwnerID, &f.Model, &f.RPM, &f.Stages)
	if err != nil {
		if err == sql.ErrNoRows {
			return FrameRecord{}, ErrNotFound
		}
		return FrameRecord{}, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, number, stage_number, bore_mm, clearance_pct, vvcp_pct, sace_pct, sahe_pct
		 FROM throws WHERE frame_id=$1 ORDER BY number`, frameID)
	if err != nil {
		return FrameRecord{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var th ThrowRecord
		if err := rows.Scan(&th.ID, &th.Number, &th.StageNumber, &th.BoreMM,
			&th.ClearancePct, &th.VVCPPct, &th.SACEPct, &th.SAHEPct); err != nil {
			return FrameRecord{}, err
		}
		f.Throws = append(f.Throws, th)
	}
	if err := rows.Err(); err != nil {
		return FrameRecord{}, err
	}

	var d DriverRecord
	err = r.db.QueryRowContext(ctx,
		`SELECT id, kind, nominal_power_kw, efficiency_pct, fuel_consumption_nm3_h, thermal_efficiency_pct, power_factor, torque_nm
		 FROM drivers WHERE frame_id=$1`, frameID).Scan(
		&d.ID, &d.Kind, &d.NominalPowerKW, &d.EfficiencyPct,
		&d.FuelConsumptionNm3h, &d.ThermalEfficiencyPct, &d.PowerFactor, &d.TorqueNM)
	if err == nil {
		f.Driver = &d
	} else if err != sql.ErrNoRows {
		return FrameRecord{}, err
	}

	return f, nil
}

func (r *PostgresDB) DeleteFrame(ctx context.Context, ownerID, frameID int) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM frames WHERE id=$1 AND owner_id=$2", frameID, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
