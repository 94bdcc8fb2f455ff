// Package pg connects to PostgreSQL with pgx/v5 and applies goose migrations.
//
//	pool, err := pg.Connect(ctx, cfg.PG)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if cfg.PG.Migrate {
//		if err := pg.Migrate(ctx, pool, cfg.PG, log); err != nil {
//			return err
//		}
//	}
package pg
