// Package pg connects to PostgreSQL through a pgx/v5 connection pool and
// applies goose migrations from an fs.FS.
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, migrations.FS, log); err != nil {
//		return err
//	}
//
// Error helpers classify pgx errors (no rows, unique violations) so storage
// adapters can translate them into domain errors.
package pg
