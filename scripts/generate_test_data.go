package main

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/dfwhvac/internal/config"
	"github.com/dfwhvac/internal/db"
)

// 本地开发用的测试数据生成器：管理员账号、示例线索与评分快照。
func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("读取 .env 失败:", err)
	}
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}
	defer db.Close()

	fmt.Println("开始生成测试数据...")

	if _, err := db.EnsureUser(db.DB, "admin", "admin123"); err != nil {
		log.Fatal("创建管理员失败:", err)
	}
	fmt.Println("✅ 管理员: admin (密码: admin123)")

	created, err := seedLeads(db.DB, time.Now())
	if err != nil {
		log.Fatal("创建线索失败:", err)
	}
	fmt.Printf("✅ 示例线索: %d 条\n", created)

	if err := seedReviewSnapshot(db.DB, time.Now()); err != nil {
		log.Fatal("创建评分快照失败:", err)
	}
	fmt.Println("测试数据生成完成！")
}

// sampleLeads 覆盖三种表单与三种处理状态。
var sampleLeads = []db.Lead{
	{LeadType: db.LeadTypeService, Status: db.LeadStatusNew, FirstName: "Maria", LastName: "Lopez", Phone: "(972) 555-0142", Email: "maria@example.com", ServiceAddress: "1234 Elm St, Dallas, TX 75201", NumSystems: "1", ProblemDescription: "AC is running but blowing warm air upstairs.", SourcePage: "/request-service"},
	{LeadType: db.LeadTypeEstimate, Status: db.LeadStatusNew, FirstName: "James", LastName: "Carter", Phone: "(214) 555-0199", ServiceAddress: "88 Ridge Rd, Plano, TX 75024", NumSystems: "2", ProblemDescription: "Looking to replace two 15 year old systems.", SourcePage: "/estimate"},
	{LeadType: db.LeadTypeContact, Status: db.LeadStatusContacted, FirstName: "Priya", LastName: "Shah", Email: "priya@example.com", ProblemDescription: "Do you offer maintenance plans for duplexes?", SourcePage: "/contact"},
	{LeadType: db.LeadTypeService, Status: db.LeadStatusContacted, FirstName: "Tom", LastName: "Nguyen", Phone: "(817) 555-0110", ServiceAddress: "501 Main St, Fort Worth, TX 76102", NumSystems: "1", ProblemDescription: "Furnace clicks but does not ignite.", SourcePage: "/"},
	{LeadType: db.LeadTypeEstimate, Status: db.LeadStatusClosed, FirstName: "Angela", LastName: "Brooks", Phone: "(469) 555-0175", Email: "angela@example.com", ServiceAddress: "9 Lake Dr, Coppell, TX 75019", NumSystems: "4+", ProblemDescription: "Office building, rooftop units.", SourcePage: "/estimate"},
}

// seedLeads 仅在线索表为空时写入示例数据，返回新建条数。
func seedLeads(gdb *gorm.DB, now time.Time) (int, error) {
	var count int64
	if err := gdb.Model(&db.Lead{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		fmt.Println("线索已存在，跳过创建")
		return 0, nil
	}

	for i, sample := range sampleLeads {
		lead := sample
		lead.CreatedAt = now.Add(-time.Duration(i*7) * time.Hour)
		if err := gdb.Create(&lead).Error; err != nil {
			return i, err
		}
	}
	return len(sampleLeads), nil
}

func seedReviewSnapshot(gdb *gorm.DB, now time.Time) error {
	var count int64
	if err := gdb.Model(&db.ReviewSnapshot{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return gdb.Create(&db.ReviewSnapshot{
		BusinessName: "DFW HVAC",
		Rating:       5.0,
		ReviewCount:  129,
		FetchedAt:    now.UTC(),
	}).Error
}
