// File: /database/database.go
package database

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"anglerhub-api/models"
)

// InMemoryDSN is the default database. The whole dataset lives and dies
// with the process; every start reseeds the same sample data.
const InMemoryDSN = "file::memory:?cache=shared"

func Initialize(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Post{},
		&models.PostLike{},
		&models.PostBookmark{},
		&models.Comment{},
		&models.CatchLog{},
		&models.FishingSpot{},
		&models.Conversation{},
		&models.ChatMessage{},
		&models.ViewRecord{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// SeedData populates the session with the sample dataset every run starts
// from. Counters on seeded rows mirror the sample display values; only
// mutations performed through the API are required to keep flag/counter
// pairs consistent.
func SeedData(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount > 0 {
		return nil
	}

	now := time.Now()

	users := []models.User{
		{
			ID:     models.SelfUserID,
			Name:   "我的昵称",
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Me",
			Level:  "钓鱼新手",
			Bio:    "点击编辑简介，让更多钓友认识你...",
			BgImage: "https://picsum.photos/800/400?grayscale&blur=2",
			LikesCount: 5, FollowersCount: 5, FollowingCount: 3,
		},
		{
			ID:     "user_1",
			Name:   "路亚阿强",
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Felix",
			Level:  "路亚达人",
			Bio:    "专注路亚10年，目标是游钓全中国。喜欢分享标点和技巧，欢迎交流！🎣",
			BgImage: "https://picsum.photos/800/400?grayscale&blur=2",
			LikesCount: 1205, FollowersCount: 3880, FollowingCount: 45,
		},
		{
			ID:     "user_2",
			Name:   "老张爱台钓",
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Jack",
			Level:  "野钓王者",
			Bio:    "台钓二十年，鲫鲤不分家。",
			BgImage: "https://picsum.photos/800/400?grayscale&blur=2",
			LikesCount: 860, FollowersCount: 1520, FollowingCount: 88,
		},
		{
			ID:     "user_3",
			Name:   "FishingGirl",
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Aneka",
			Level:  "新手上路",
			Bio:    "第一次夜钓就上鱼的幸运玩家。",
			BgImage: "https://picsum.photos/800/400?grayscale&blur=2",
			LikesCount: 120, FollowersCount: 96, FollowingCount: 35,
		},
		{
			ID:     "user_4",
			Name:   "黑坑老板娘",
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Jessica",
			Level:  "塘主",
			Bio:    "老李垂钓园，天天放鱼。",
			BgImage: "https://picsum.photos/800/400?grayscale&blur=2",
			LikesCount: 2400, FollowersCount: 5200, FollowingCount: 12,
		},
		{
			ID:     "u2",
			Name:   "台钓小王子",
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Prince",
			Level:  "台钓高手",
			Bio:    "一支竿走天下",
			BgImage: "https://picsum.photos/800/400?grayscale&blur=2",
			LikesCount: 640, FollowersCount: 980, FollowingCount: 150,
		},
		{
			ID:     "u3",
			Name:   "空军司令",
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Commander",
			Level:  "资深空军",
			Bio:    "除了鱼钓不到，其他都能钓上来",
			BgImage: "https://picsum.photos/800/400?grayscale&blur=2",
			LikesCount: 77, FollowersCount: 45, FollowingCount: 320,
		},
		{
			ID:     "u4",
			Name:   "Suki",
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Suki",
			Level:  "新手上路",
			Bio:    "喜欢路亚的萌新",
			BgImage: "https://picsum.photos/800/400?grayscale&blur=2",
			LikesCount: 30, FollowersCount: 18, FollowingCount: 60,
		},
		{
			ID:     "u5",
			Name:   "大鱼杀手",
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Killer",
			Level:  "巨物猎手",
			Bio:    "专注巨物",
			BgImage: "https://picsum.photos/800/400?grayscale&blur=2",
			LikesCount: 1890, FollowersCount: 2300, FollowingCount: 40,
		},
		{
			ID:     "u6",
			Name:   "周末钓手",
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Weekend",
			Level:  "休闲玩家",
			Bio:    "平时上班，周末河边见",
			BgImage: "https://picsum.photos/800/400?grayscale&blur=2",
			LikesCount: 210, FollowersCount: 130, FollowingCount: 95,
		},
	}
	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", users[i].ID, err)
		}
	}

	// me follows user_1, u2 and u5; u2..u6 follow me. u2 and u5 are mutual.
	follows := []models.Follow{
		{FollowerID: models.SelfUserID, FollowingID: "user_1"},
		{FollowerID: models.SelfUserID, FollowingID: "u2"},
		{FollowerID: models.SelfUserID, FollowingID: "u5"},
		{FollowerID: "u2", FollowingID: models.SelfUserID},
		{FollowerID: "u3", FollowingID: models.SelfUserID},
		{FollowerID: "u4", FollowingID: models.SelfUserID},
		{FollowerID: "u5", FollowingID: models.SelfUserID},
		{FollowerID: "u6", FollowingID: models.SelfUserID},
	}
	for i := range follows {
		if err := db.Create(&follows[i]).Error; err != nil {
			return fmt.Errorf("failed to seed follow: %w", err)
		}
	}

	// CreatedAt descends in list order so the feed query reproduces it.
	posts := []models.Post{
		{
			ID:     "1",
			UserID: "user_1",
			Content: "今天在千岛湖解锁米级翘嘴！这个窗口期抓得太准了，用的米诺，收线要慢。兄弟们，这波什么水平？🎣",
			ImageUrls: models.StringSlice{
				"https://picsum.photos/400/400?random=100",
				"https://picsum.photos/400/400?random=1002",
				"https://picsum.photos/400/400?random=1003",
			},
			Location: "杭州·千岛湖", LikesCount: 128, CommentsCount: 2,
			Tags: models.StringSlice{"路亚", "翘嘴", "巨物"}, TimeLabel: "2小时前",
			CreatedAt: now.Add(-1 * time.Minute),
		},
		{
			ID:        "vid_1",
			UserID:    "user_4",
			Content:   "今天放鱼3000斤，大青鱼为主，明天早上6点开干！想爆护的赶紧来占位！📹",
			ImageUrls: models.StringSlice{},
			VideoUrl:  "https://www.w3schools.com/html/mov_bbb.mp4",
			Location:  "杭州·老李垂钓园", LikesCount: 245, CommentsCount: 56,
			Tags: models.StringSlice{"黑坑", "放鱼视频"}, TimeLabel: "1小时前",
			CreatedAt: now.Add(-2 * time.Minute),
		},
		{
			ID:     "2",
			UserID: "user_2",
			Content: "这里的鲫鱼皮毛真好，黄金鲫！一下午爆护，可以回家喝汤了。",
			ImageUrls: models.StringSlice{
				"https://picsum.photos/400/300?random=101",
				"https://picsum.photos/400/300?random=105",
			},
			Location: "绍兴·鉴湖", LikesCount: 45, CommentsCount: 0,
			Tags: models.StringSlice{"台钓", "鲫鱼", "野钓"}, TimeLabel: "4小时前",
			CreatedAt: now.Add(-3 * time.Minute),
		},
		{
			ID:     "3",
			UserID: "user_3",
			Content: "第一次夜钓，虽然只上了一条小鱼，但是感觉很棒！有没有大神教教怎么调漂呀？😅",
			ImageUrls: models.StringSlice{
				"https://picsum.photos/400/500?random=102",
			},
			Location: "杭州·钱塘江", LikesCount: 89, CommentsCount: 1,
			Tags: models.StringSlice{"夜钓", "求助"}, TimeLabel: "昨天",
			CreatedAt: now.Add(-4 * time.Minute),
		},
		{
			ID:     "101",
			UserID: "user_1",
			Content: "今天这尾鲈鱼手感炸裂！",
			ImageUrls: models.StringSlice{
				"https://picsum.photos/400/400?random=201",
			},
			Location: "杭州·青山湖", LikesCount: 88, CommentsCount: 12,
			Tags: models.StringSlice{"路亚", "鲈鱼"}, TimeLabel: "2天前",
			CreatedAt: now.Add(-5 * time.Minute),
		},
		{
			ID:     "102",
			UserID: "user_1",
			Content: "空军是不可能空军的，这辈子都不可能空军。",
			ImageUrls: models.StringSlice{
				"https://picsum.photos/400/500?random=202",
			},
			Location: "杭州·钱塘江", LikesCount: 45, CommentsCount: 5,
			Tags: models.StringSlice{"野钓"}, TimeLabel: "1周前",
			CreatedAt: now.Add(-6 * time.Minute),
		},
	}
	for i := range posts {
		if err := db.Create(&posts[i]).Error; err != nil {
			return fmt.Errorf("failed to seed post %s: %w", posts[i].ID, err)
		}
	}

	comments := []models.Comment{
		{
			ID: "c1", PostID: "1",
			AuthorName:   "钓鱼佬不空军",
			AuthorAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Bob",
			Text:         "太强了！求米诺型号链接！",
			TimeLabel:    "1小时前",
			CreatedAt:    now.Add(-2 * time.Minute),
		},
		{
			ID: "c2", PostID: "1",
			AuthorName:   "Suki",
			AuthorAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Suki",
			Text:         "这个体型确实少见，羡慕了。",
			TimeLabel:    "30分钟前",
			CreatedAt:    now.Add(-1 * time.Minute),
		},
	}
	for i := range comments {
		if err := db.Create(&comments[i]).Error; err != nil {
			return fmt.Errorf("failed to seed comment: %w", err)
		}
	}

	// The session user has already liked the video post and post 2, and
	// bookmarked post 2.
	likes := []models.PostLike{
		{PostID: "vid_1", UserID: models.SelfUserID},
		{PostID: "2", UserID: models.SelfUserID},
	}
	for i := range likes {
		if err := db.Create(&likes[i]).Error; err != nil {
			return fmt.Errorf("failed to seed like: %w", err)
		}
	}
	if err := db.Create(&models.PostBookmark{PostID: "2", UserID: models.SelfUserID}).Error; err != nil {
		return fmt.Errorf("failed to seed bookmark: %w", err)
	}

	logs := []models.CatchLog{
		{
			ID: "1", Species: "大口黑鲈 (Largemouth Bass)", Weight: 1.2, Length: 35,
			Location: "杭州青山湖", Date: "2023-10-15",
			Note:  "清晨路亚，用软虫德州钓组，水草边缘接口明显。",
			Image: "https://picsum.photos/400/300?random=10",
			CreatedAt: now.Add(-1 * time.Minute),
		},
		{
			ID: "2", Species: "鲤鱼", Weight: 3.5, Length: 48,
			Location: "钱塘江", Date: "2023-10-12",
			Note:  "台钓，7.2米竿，螺鲤饵。手感极佳。",
			Image: "https://picsum.photos/400/300?random=11",
			CreatedAt: now.Add(-2 * time.Minute),
		},
	}
	for i := range logs {
		if err := db.Create(&logs[i]).Error; err != nil {
			return fmt.Errorf("failed to seed catch log: %w", err)
		}
	}

	spots := []models.FishingSpot{
		{
			ID: "1", Name: "青山湖路亚基地 No.1",
			Image:    "https://picsum.photos/800/600?random=1",
			Distance: "5.2 km",
			Tags:     models.StringSlice{"路亚", "黑坑", "巨物"},
			Rating:   4.8, Price: "¥100/4小时",
			Address:     "杭州市临安区青山湖科技城环湖绿道入口处向西200米",
			Features:    models.StringSlice{"免费停车", "可夜钓", "提供餐饮", "渔具租赁"},
			FishSpecies: models.StringSlice{"大口黑鲈", "翘嘴", "鳜鱼", "鳡鱼"},
			Description: "青山湖路亚基地环境优美，水质清澈。主攻路亚对象鱼，近期放流大口黑鲈2000斤，翘嘴500斤。标点丰富，结构复杂，适合各种路亚钓法。",
		},
		{
			ID: "2", Name: "西湖野钓区",
			Image:    "https://picsum.photos/800/600?random=2",
			Distance: "8.4 km",
			Tags:     models.StringSlice{"台钓", "免费"},
			Rating:   4.5, Price: "免费",
			Address:     "杭州市西湖区杨公堤沿线指定垂钓区",
			Features:    models.StringSlice{"免费停车", "可夜钓"},
			FishSpecies: models.StringSlice{"鲫鱼", "鲤鱼", "草鱼"},
			Description: "市区少有的免费野钓区，鱼情稳定，适合台钓休闲。周末人多，建议早到占位。",
		},
		{
			ID: "3", Name: "千岛湖巨物塘",
			Image:    "https://picsum.photos/800/600?random=3",
			Distance: "120 km",
			Tags:     models.StringSlice{"巨物", "度假"},
			Rating:   4.9, Price: "¥300/天",
			Address:     "杭州市淳安县千岛湖镇环湖南路渔乐码头",
			Features:    models.StringSlice{"免费停车", "提供餐饮", "渔具租赁"},
			FishSpecies: models.StringSlice{"青鱼", "翘嘴", "鳡鱼"},
			Description: "千岛湖深水库区，巨物出没。配套完善，适合多日游钓，建议重装备出行。",
		},
	}
	for i := range spots {
		if err := db.Create(&spots[i]).Error; err != nil {
			return fmt.Errorf("failed to seed spot %s: %w", spots[i].ID, err)
		}
	}

	conversations := []models.Conversation{
		{
			ID: "user_1", UserName: "路亚阿强",
			UserAvatar:  "https://api.dicebear.com/7.x/avataaars/svg?seed=Felix",
			LastMessage: "好的，祝你爆护！🎣",
			TimeLabel:   "刚刚", UnreadCount: 0,
			UpdatedAt: now,
		},
		{
			ID: "u2", UserName: "台钓小王子",
			UserAvatar:  "https://api.dicebear.com/7.x/avataaars/svg?seed=Prince",
			LastMessage: "周末约一波？我知道个新塘口。",
			TimeLabel:   "10分钟前", UnreadCount: 2,
			UpdatedAt: now.Add(-10 * time.Minute),
		},
		{
			ID: models.SystemNoticeID, UserName: "系统通知",
			UserAvatar:  "https://api.dicebear.com/7.x/avataaars/svg?seed=System",
			LastMessage: "恭喜！您的作品《千岛湖巨物》已被精选推荐。",
			TimeLabel:   "2小时前", UnreadCount: 1,
			UpdatedAt: now.Add(-2 * time.Hour),
		},
	}
	for i := range conversations {
		if err := db.Create(&conversations[i]).Error; err != nil {
			return fmt.Errorf("failed to seed conversation %s: %w", conversations[i].ID, err)
		}
	}

	messages := []models.ChatMessage{
		{ID: "m1", ConversationID: "user_1", Sender: models.SenderSelf, Text: "兄弟，上次那个钓点具体在哪个位置？", TimeLabel: "昨天 14:20", CreatedAt: now.Add(-26 * time.Hour)},
		{ID: "m2", ConversationID: "user_1", Sender: models.SenderCounterpart, Text: "就在青山湖大桥下面，东边那个湾子里。", TimeLabel: "昨天 14:35", CreatedAt: now.Add(-25 * time.Hour)},
		{ID: "m3", ConversationID: "user_1", Sender: models.SenderSelf, Text: "水深大概多少？需要打窝吗？", TimeLabel: "昨天 14:36", CreatedAt: now.Add(-25 * time.Hour).Add(time.Minute)},
		{ID: "m4", ConversationID: "user_1", Sender: models.SenderCounterpart, Text: "大概3米左右，建议打点重窝，这几天鲤鱼开口不错。", TimeLabel: "昨天 14:40", CreatedAt: now.Add(-25 * time.Hour).Add(5 * time.Minute)},
		{ID: "m5", ConversationID: "u2", Sender: models.SenderCounterpart, Text: "周末约一波？我知道个新塘口。", TimeLabel: "10分钟前", CreatedAt: now.Add(-10 * time.Minute)},
		{ID: "m6", ConversationID: models.SystemNoticeID, Sender: models.SenderCounterpart, Text: "恭喜！您的作品《千岛湖巨物》已被精选推荐。", TimeLabel: "2小时前", CreatedAt: now.Add(-2 * time.Hour)},
	}
	for i := range messages {
		if err := db.Create(&messages[i]).Error; err != nil {
			return fmt.Errorf("failed to seed message: %w", err)
		}
	}

	return nil
}
