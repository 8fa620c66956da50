package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-scheduler/internal/core/domain"
)

type seedUniverse struct {
	name      string
	verticals []string
	geography domain.GeographyConfig
}

var seedUniverses = []seedUniverse{
	{
		name:      "Texas home services",
		verticals: []string{"hvac", "plumbing", "roofing"},
		geography: domain.GeographyConfig{Constraints: []domain.GeographicConstraint{
			{Level: domain.GeoState, Values: []string{"TX"}},
		}},
	},
	{
		name:      "Bay Area clinics",
		verticals: []string{"dental", "chiropractic", "veterinary", "optometry"},
		geography: domain.GeographyConfig{Constraints: []domain.GeographicConstraint{
			{Level: domain.GeoCity, Values: []string{"San Francisco, CA", "Oakland, CA", "San Jose, CA"}},
		}},
	},
	{
		name:      "Chicago legal",
		verticals: []string{"legal"},
		geography: domain.GeographyConfig{Constraints: []domain.GeographicConstraint{
			{Level: domain.GeoZipCode, Values: []string{"60601", "60602", "60603", "60604"}},
		}},
	},
}

// Seed inserts demo universes, members and running campaigns with pending
// targets so the first scheduling pass has work to do.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i, su := range seedUniverses {
		universeID := int64(i + 1)
		geo, err := json.Marshal(su.geography)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO target_universes
    (id, name, verticals, geography, estimated_size, active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,TRUE,now(),now()) ON CONFLICT DO NOTHING`,
			universeID, su.name, su.verticals, geo, 2000)
		if err != nil {
			return err
		}

		members := 500 + r.Intn(1500)
		for b := 1; b <= members; b++ {
			businessID := universeID*100000 + int64(b)
			_, err = db.Exec(ctx, `INSERT INTO universe_members (universe_id, business_id, qualified)
VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`, universeID, businessID, r.Intn(4) > 0)
			if err != nil {
				return err
			}
		}
	}

	for i := 1; i <= 5; i++ {
		universeID := int64((i-1)%len(seedUniverses) + 1)
		settings := domain.BatchSettings{
			BatchSize:            []int{50, 100, 200}[r.Intn(3)],
			MaxConcurrentBatches: 2 + r.Intn(4),
			DelaySeconds:         []int{60, 300, 900}[r.Intn(3)],
			AllowedHoursStart:    "09:00",
			AllowedHoursEnd:      "17:00",
		}
		raw, err := json.Marshal(settings)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO campaigns
    (id, universe_id, name, status, batch_settings, created_at, updated_at)
VALUES ($1,$2,$3,'running',$4,now() - make_interval(days => $5),now()) ON CONFLICT DO NOTHING`,
			i, universeID, fmt.Sprintf("Campaign %d", i), raw, r.Intn(14))
		if err != nil {
			return err
		}

		// every qualified member becomes a target; a few were already reached
		_, err = db.Exec(ctx, `INSERT INTO campaign_targets (campaign_id, business_id, status)
SELECT $1, business_id,
       CASE WHEN random() < 0.1 THEN 'contacted' WHEN random() < 0.02 THEN 'excluded' ELSE 'pending' END
FROM universe_members
WHERE universe_id = $2 AND qualified
ON CONFLICT DO NOTHING`, i, universeID)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `UPDATE campaigns c SET
    total_targets = t.total,
    contacted_targets = t.contacted,
    excluded_targets = t.excluded
FROM (
    SELECT count(*) AS total,
           count(*) FILTER (WHERE status = 'contacted') AS contacted,
           count(*) FILTER (WHERE status = 'excluded') AS excluded
    FROM campaign_targets WHERE campaign_id = $1
) t
WHERE c.id = $1`, i)
		if err != nil {
			return err
		}
	}

	for _, table := range []string{"target_universes", "campaigns"} {
		_, err := db.Exec(ctx, fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT COALESCE(max(id), 1) FROM %[1]s))`, table))
		if err != nil {
			return err
		}
	}
	return nil
}
