package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TrustedSamu/Dome1v1/internal"
)

// PostgresStorage stores one row per user; the list-valued field trees are
// jsonb columns so ReplaceUserFields maps to a column-granular UPDATE.
type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

const userColumns = `name, tasks, training, insights, sleep, total_points, daily_wins`

func (p *PostgresStorage) GetUser(ctx context.Context, name string) (*internal.User, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE name = $1`, name)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		p.logger.Errorf("failed to scan user: %v", err)
		return nil, err
	}
	return u, nil
}

func (p *PostgresStorage) GetAllUsers(ctx context.Context) ([]internal.User, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY name`)
	if err != nil {
		p.logger.Errorf("failed to query users: %v", err)
		return nil, err
	}
	defer rows.Close()

	var users []internal.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			p.logger.Errorf("failed to scan user: %v", err)
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (p *PostgresStorage) CreateUser(ctx context.Context, user *internal.User) error {
	tasks, training, insights, sleep, err := marshalTrees(user)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (name) DO NOTHING`,
		user.Name, tasks, training, insights, sleep, user.Stats.TotalPoints, user.Stats.DailyWins)
	if err != nil {
		p.logger.Errorf("failed to insert user: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ReplaceUserFields(ctx context.Context, name string, patch UserPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	var (
		sets []string
		args []interface{}
	)
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Tasks != nil {
		b, err := json.Marshal(*patch.Tasks)
		if err != nil {
			return err
		}
		add("tasks", string(b))
	}
	if patch.Training != nil {
		b, err := json.Marshal(*patch.Training)
		if err != nil {
			return err
		}
		add("training", string(b))
	}
	if patch.Insights != nil {
		b, err := json.Marshal(*patch.Insights)
		if err != nil {
			return err
		}
		add("insights", string(b))
	}
	if patch.Sleep != nil {
		b, err := json.Marshal(patch.Sleep)
		if err != nil {
			return err
		}
		add("sleep", string(b))
	}
	if patch.Stats != nil {
		add("total_points", patch.Stats.TotalPoints)
		add("daily_wins", patch.Stats.DailyWins)
	}

	args = append(args, name)
	query := fmt.Sprintf("UPDATE users SET %s WHERE name = $%d", strings.Join(sets, ", "), len(args))

	// Zero rows affected means the user is missing; that is a no-op.
	if _, err := p.pool.Exec(ctx, query, args...); err != nil {
		p.logger.Errorf("failed to update user %s: %v", name, err)
		return err
	}
	return nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

func scanUser(row pgx.Row) (*internal.User, error) {
	var (
		u                         internal.User
		tasks, training, insights []byte
		sleep                     []byte
	)
	if err := row.Scan(&u.Name, &tasks, &training, &insights, &sleep, &u.Stats.TotalPoints, &u.Stats.DailyWins); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tasks, &u.Tasks); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(training, &u.Training); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(insights, &u.Insights); err != nil {
		return nil, err
	}
	if len(sleep) > 0 && string(sleep) != "null" {
		u.Sleep = &internal.SleepRecord{}
		if err := json.Unmarshal(sleep, u.Sleep); err != nil {
			return nil, err
		}
	}
	return &u, nil
}

func marshalTrees(u *internal.User) (tasks, training, insights, sleep string, err error) {
	b, err := json.Marshal(u.Tasks)
	if err != nil {
		return
	}
	tasks = string(b)
	if b, err = json.Marshal(u.Training); err != nil {
		return
	}
	training = string(b)
	if b, err = json.Marshal(u.Insights); err != nil {
		return
	}
	insights = string(b)
	if u.Sleep != nil {
		if b, err = json.Marshal(u.Sleep); err != nil {
			return
		}
		sleep = string(b)
	} else {
		sleep = "null"
	}
	return
}

var _ UserRepository = (*PostgresStorage)(nil)
