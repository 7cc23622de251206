package jalali_test

import (
	"fmt"
	"time"

	"github.com/msto63/helperx/foundation/utils/jalali"
)

func ExampleFromGregorian() {
	jy, jm, jd, _ := jalali.FromGregorian(2024, 3, 20)
	fmt.Println(jy, jm, jd)
	// Output: 1403 1 1
}

func ExampleParse() {
	d, err := jalali.Parse("۱۴۰۲/۰۵/۱۲ ۱۰:۲۰")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d.Format("Y-m-d H:i"))
	fmt.Println(d.Time().Format(time.DateOnly))
	// Output:
	// 1402-05-12 10:20
	// 2023-08-03
}

func ExampleDate_Format() {
	d, _ := jalali.New(1403, 1, 1, 0, 0, 0, 0, time.UTC)
	fmt.Println(d.Format("l j F Y"))
	// Output: چهارشنبه 1 فروردین 1403
}
