package mysql

import "gorm.io/gorm"

type ownerRow struct {
	Owner string
}

// lookupOwner runs a scoped owner query built by the caller and reports whether it matched a row.
func lookupOwner(query *gorm.DB) (owner string, found bool, err error) {
	var rows []ownerRow
	if err := query.Limit(1).Scan(&rows).Error; err != nil {
		return "", false, err
	}
	if len(rows) == 0 {
		return "", false, nil
	}
	return rows[0].Owner, true, nil
}
