package schema

import "strings"

// DefaultCommission is the creator revenue share applied when the sheet cell
// or request payload omits one.
const DefaultCommission = 0.7

// DefaultTransferStatus is the initial transfer state of a new deal.
const DefaultTransferStatus = "pending transfer"

// Creators maps the 达人 tab: 16 columns, A through P, keyed by 达人ID.
var Creators = Schema{
	Sheet:     "Creators",
	KeyFields: []string{"id"},
	Columns: []Column{
		{Field: "id", Header: "达人ID", Default: ""},
		{Field: "name", Header: "姓名", Default: ""},
		{Field: "gender", Header: "性别", Default: ""},
		{Field: "age", Header: "年龄", Default: ""},
		{Field: "city", Header: "城市", Default: ""},
		{Field: "phone", Header: "电话", Default: ""},
		{Field: "wechat", Header: "微信号", Default: ""},
		{Field: "platform", Header: "主平台", Default: ""},
		{Field: "interviewStatus", Header: "面试状态", Default: ""},
		{Field: "contractStatus", Header: "签约状态", Default: ""},
		{Field: "commission", Header: "分成比例", Default: DefaultCommission, Parse: ParseFraction},
		{Field: "notes", Header: "备注", Default: ""},
		{Field: "bankName", Header: "开户银行", Default: ""},
		{Field: "bankAccount", Header: "银行账号", Default: ""},
		{Field: "accountHolder", Header: "开户人", Default: ""},
		{Field: "createDate", Header: "创建日期", Default: ""},
	},
}

// Accounts maps the platform-accounts tab: 6 columns, A through F, keyed by
// the (creatorId, platform) pair.
var Accounts = Schema{
	Sheet:     "Accounts",
	KeyFields: []string{"creatorId", "platform"},
	Columns: []Column{
		{Field: "creatorId", Header: "达人ID", Default: ""},
		{Field: "platform", Header: "平台", Default: ""},
		{Field: "link", Header: "主页链接", Default: ""},
		{Field: "followers", Header: "粉丝数", Default: int64(0), Parse: ParseCount},
		{Field: "price", Header: "报价", Default: float64(0), Parse: ParseMoney},
		{Field: "updateDate", Header: "更新日期", Default: ""},
	},
}

// Deals maps the brand-deals tab: 15 columns, A through O, keyed by 订单ID.
var Deals = Schema{
	Sheet:     "Deals",
	KeyFields: []string{"dealId"},
	Columns: []Column{
		{Field: "dealId", Header: "订单ID", Default: ""},
		{Field: "creatorId", Header: "达人ID", Default: ""},
		{Field: "partner", Header: "合作方", Default: ""},
		{Field: "type", Header: "合作类型", Default: ""},
		{Field: "channel", Header: "渠道", Default: ""},
		{Field: "date", Header: "合作日期", Default: ""},
		{Field: "amount", Header: "合作金额", Default: float64(0), Parse: ParseMoney},
		{Field: "receivedAmount", Header: "到账金额", Default: float64(0), Parse: ParseMoney},
		{Field: "companyShare", Header: "公司分成", Default: float64(0), Parse: ParseMoney},
		{Field: "creatorShare", Header: "达人分成", Default: float64(0), Parse: ParseMoney},
		{Field: "transferCycle", Header: "转账周期", Default: ""},
		{Field: "transferDate", Header: "转账日期", Default: ""},
		{Field: "transferStatus", Header: "转账状态", Default: DefaultTransferStatus},
		{Field: "unallocated", Header: "未分配金额", Default: float64(0), Parse: ParseMoney},
		{Field: "informalNotes", Header: "口头约定", Default: ""},
	},
}

// AccountKey encodes the composite account identity as "{creatorId}-{platform}".
func AccountKey(creatorID, platform string) string {
	return creatorID + "-" + platform
}

// SplitAccountKey decodes an account key by splitting on the first hyphen.
// A creatorId containing a hyphen cannot round-trip through this encoding;
// the source data never uses one.
func SplitAccountKey(key string) (creatorID, platform string, ok bool) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
