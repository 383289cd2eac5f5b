package mysql

import (
	"errors"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// mysql错误码1062:唯一索引冲突(Duplicate entry)
const errDuplicateEntry = 1062

// isDuplicateError 判断写入是否撞上唯一索引
// books表的book_code列带唯一索引,是项目里唯一会触发1062的路径
func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysqldrv.MySQLError
	return errors.As(err, &me) && me.Number == errDuplicateEntry
}
