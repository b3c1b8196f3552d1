package postgre

const fingerprintQuery = `
	SELECT
		COUNT(DISTINCT payment_id),
		COALESCE(SUM(CASE WHEN payment_status = 'Success' THEN amount ELSE 0 END), 0),
		COALESCE(MAX(payment_date)::text, ''),
		COUNT(CASE WHEN payment_status = 'Success' THEN 1 END),
		(SELECT COUNT(*) FROM (
			SELECT DISTINCT donor_name, donor_email
			FROM donations_raw d2
			WHERE d2.payment_date >= $1 AND d2.payment_date <= $2
		) sub)
	FROM donations_raw
	WHERE payment_date >= $1 AND payment_date <= $2
`

const modificationColumnQuery = `
	SELECT column_name
	FROM information_schema.columns
	WHERE table_name = 'donations_raw'
	  AND column_name IN ('updated_at', 'modified_at', 'created_at', 'inserted_at')
	ORDER BY CASE column_name
		WHEN 'updated_at'  THEN 1
		WHEN 'modified_at' THEN 2
		WHEN 'created_at'  THEN 3
		WHEN 'inserted_at' THEN 4
	END
	LIMIT 1
`

// maxModifiedQueryFormat takes a column name from the information_schema whitelist above.
const maxModifiedQueryFormat = `
	SELECT COALESCE(MAX(%s)::text, '')
	FROM donations_raw
	WHERE payment_date >= $1
`

const summaryQuery = `
	SELECT
		COUNT(DISTINCT payment_id),
		(SELECT COUNT(*) FROM (
			SELECT DISTINCT donor_name, donor_email
			FROM donations_raw d2
			WHERE d2.payment_date BETWEEN $1 AND $2
		) sub),
		COALESCE(SUM(CASE WHEN payment_status = 'Success' THEN amount ELSE 0 END), 0),
		COALESCE(AVG(CASE WHEN payment_status = 'Success' THEN amount END), 0),
		COALESCE(MIN(CASE WHEN payment_status = 'Success' THEN amount END), 0),
		COALESCE(MAX(CASE WHEN payment_status = 'Success' THEN amount END), 0),
		COUNT(CASE WHEN payment_status = 'Success' THEN 1 END),
		COUNT(CASE WHEN payment_status != 'Success' THEN 1 END)
	FROM donations_raw
	WHERE payment_date BETWEEN $1 AND $2
`

const topDonorsQuery = `
	SELECT
		COALESCE(donor_name, donor_email, 'Anonymous'),
		COUNT(DISTINCT payment_id),
		COALESCE(SUM(amount), 0),
		COALESCE(AVG(amount), 0),
		CASE WHEN COUNT(DISTINCT payment_id) > 1 THEN 'Recurring' ELSE 'One-time' END
	FROM donations_raw
	WHERE payment_date BETWEEN $1 AND $2
	  AND payment_status = 'Success'
	GROUP BY donor_name, donor_email
	ORDER BY 3 DESC
	LIMIT $3
`

const topSchoolsQuery = `
	SELECT
		COALESCE(school_name, 'Not Specified'),
		COALESCE(school_location, 'Unknown'),
		COUNT(DISTINCT payment_id),
		COALESCE(SUM(amount), 0),
		COUNT(DISTINCT (donor_name, donor_email))
	FROM donations_raw
	WHERE payment_date BETWEEN $1 AND $2
	  AND payment_status = 'Success'
	  AND school_name IS NOT NULL
	  AND school_name != ''
	GROUP BY school_name, school_location
	ORDER BY 4 DESC
	LIMIT $3
`

const topCampaignsQuery = `
	SELECT
		COALESCE(campaign_name, 'General Fund'),
		CASE
			WHEN COUNT(DISTINCT payment_id) > COUNT(DISTINCT (donor_name, donor_email)) THEN 'Recurring'
			ELSE 'One-time'
		END,
		COUNT(DISTINCT payment_id),
		COALESCE(SUM(amount), 0),
		COUNT(DISTINCT (donor_name, donor_email))
	FROM donations_raw
	WHERE payment_date BETWEEN $1 AND $2
	  AND payment_status = 'Success'
	  AND campaign_name IS NOT NULL
	  AND campaign_name != ''
	GROUP BY campaign_name
	ORDER BY 4 DESC
	LIMIT $3
`

const statusSummaryQuery = `
	SELECT
		COALESCE(payment_status, ''),
		COUNT(*),
		COALESCE(SUM(amount), 0)
	FROM donations_raw
	WHERE payment_date BETWEEN $1 AND $2
	GROUP BY payment_status
	ORDER BY 2 DESC
`

const monthlyBreakdownQuery = `
	SELECT
		EXTRACT(MONTH FROM payment_date)::int,
		TO_CHAR(payment_date, 'Month'),
		COUNT(DISTINCT payment_id),
		COALESCE(SUM(CASE WHEN payment_status = 'Success' THEN amount ELSE 0 END), 0),
		COUNT(DISTINCT (donor_name, donor_email))
	FROM donations_raw
	WHERE EXTRACT(YEAR FROM payment_date) = $1
	  AND payment_status = 'Success'
	GROUP BY EXTRACT(MONTH FROM payment_date), TO_CHAR(payment_date, 'Month')
	ORDER BY 1
`
