// internal/service/catalog_service.go
package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"csgobeans/internal/middleware"
	"csgobeans/internal/model"
	"csgobeans/internal/repository"

	"gorm.io/gorm"
)

type CatalogService interface {
	CreateBean(ctx context.Context, req *model.CreateBeanRequest) (*model.Bean, error)
	GetBean(ctx context.Context, beanID uint) (*model.Bean, error)
	GetBeanByName(ctx context.Context, name string) (*model.Bean, error)
	ListBeans(ctx context.Context, offset, limit int) ([]*model.Bean, error)
	CountBeans(ctx context.Context) (int64, error)
	ImportBeans(ctx context.Context, descriptors []model.BeanDescriptor) (int, error)
	ImportFromFile(ctx context.Context, path string) (int, error)
}

type catalogService struct {
	db       *gorm.DB
	beanRepo repository.BeanRepository
}

func NewCatalogService(db *gorm.DB, beanRepo repository.BeanRepository) CatalogService {
	return &catalogService{
		db:       db,
		beanRepo: beanRepo,
	}
}

func (s *catalogService) CreateBean(ctx context.Context, req *model.CreateBeanRequest) (*model.Bean, error) {
	logger := middleware.GetLogger(ctx)

	color := model.Color(req.Color)
	quality := model.Quality(req.Quality)
	if !color.Valid() {
		return nil, model.NewAppError("INVALID_INPUT", "色の値が正しくありません。", "color", model.ErrInvalidInput)
	}
	if !quality.Valid() {
		return nil, model.NewAppError("INVALID_INPUT", "品質の値が正しくありません。", "quality", model.ErrInvalidInput)
	}

	var createdBean *model.Bean

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 名前での重複チェック
		_, err := s.beanRepo.FindByName(ctx, tx, req.Name)
		if err == nil {
			logger.Warn("Bean name already exists", "name", req.Name)
			return model.NewAppError("DUPLICATE_NAME", "その名前のビーンは既に存在します。", "name", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check bean name existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		bean := &model.Bean{
			Name:      req.Name,
			ShortDesc: req.ShortDesc,
			Color:     color,
			Quality:   quality,
		}
		if err := s.beanRepo.Create(ctx, tx, bean); err != nil {
			// 一意制約が check-then-insert レースの最終防壁
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during bean creation (race condition)", "error", err)
				return model.NewAppError("DUPLICATE_NAME", "その名前のビーンは既に存在します。", "name", model.ErrConflict)
			}
			logger.Error("Failed to create bean in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ビーンの作成に失敗しました。", "", err)
		}

		createdBean = bean
		return nil
	})

	if err != nil {
		return nil, err
	}

	logger.Info("Bean created", "bean_id", createdBean.BeanID, "name", createdBean.Name)
	return createdBean, nil
}

func (s *catalogService) GetBean(ctx context.Context, beanID uint) (*model.Bean, error) {
	bean, err := s.beanRepo.FindByID(ctx, s.db, beanID)
	if err != nil {
		// エラーはリポジトリで変換済みのはず
		return nil, err
	}
	return bean, nil
}

func (s *catalogService) GetBeanByName(ctx context.Context, name string) (*model.Bean, error) {
	bean, err := s.beanRepo.FindByName(ctx, s.db, name)
	if err != nil {
		return nil, err
	}
	return bean, nil
}

func (s *catalogService) ListBeans(ctx context.Context, offset, limit int) ([]*model.Bean, error) {
	logger := middleware.GetLogger(ctx)
	beans, err := s.beanRepo.List(ctx, s.db, offset, limit)
	if err != nil {
		logger.Error("Error listing beans", "error", err)
		return nil, model.ErrInternalServer
	}
	return beans, nil
}

// CountBeans はカタログの総件数を返します (一覧のページング表示用)
func (s *catalogService) CountBeans(ctx context.Context) (int64, error) {
	logger := middleware.GetLogger(ctx)
	count, err := s.beanRepo.Count(ctx, s.db)
	if err != nil {
		logger.Error("Error counting beans", "error", err)
		return 0, model.ErrInternalServer
	}
	return count, nil
}

// ImportBeans はシード由来のビーン定義を1件ずつ登録します。
// 全体を1トランザクションにはしない: 既存の名前はスキップして続行する (再実行を安全にするため)
func (s *catalogService) ImportBeans(ctx context.Context, descriptors []model.BeanDescriptor) (int, error) {
	logger := middleware.GetLogger(ctx)
	created := 0

	for _, desc := range descriptors {
		if desc.Name == "" || !desc.Color.Valid() || !desc.Quality.Valid() {
			return created, model.NewAppError("INVALID_INPUT", "ビーン定義が正しくありません。", "", model.ErrInvalidInput)
		}

		bean := &model.Bean{
			Name:      desc.Name,
			ShortDesc: desc.ShortDesc,
			Color:     desc.Color,
			Quality:   desc.Quality,
		}
		err := s.beanRepo.Create(ctx, s.db, bean)
		if err != nil {
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Skipping bean already in catalog", "name", desc.Name)
				continue
			}
			logger.Error("Failed to import bean", "error", err, "name", desc.Name)
			return created, model.NewAppError("INTERNAL_SERVER_ERROR", "ビーンの登録に失敗しました。", "", err)
		}
		created++
	}

	logger.Info("Bean import finished", "created", created, "total", len(descriptors))
	return created, nil
}

// ImportFromFile はシードファイルからカタログを投入します。
// 1行 = name:short_desc:color:quality。空行と#始まりはスキップ。
// フィールド数や列挙値の不正は致命的エラーとして返す (起動時に落とす想定)
func (s *catalogService) ImportFromFile(ctx context.Context, path string) (int, error) {
	logger := middleware.GetLogger(ctx)

	file, err := os.Open(path)
	if err != nil {
		logger.Error("Failed to open bean seed file", "error", err, "path", path)
		return 0, model.NewAppError("SEED_FILE_ERROR", "シードファイルを開けませんでした。", "", err)
	}
	defer file.Close()

	var descriptors []model.BeanDescriptor

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		desc, err := parseBeanLine(line)
		if err != nil {
			logger.Error("Malformed bean seed entry", "error", err, "path", path, "line", lineNo)
			return 0, model.NewAppError("SEED_FILE_ERROR", fmt.Sprintf("シードファイルの%d行目が正しくありません。", lineNo), "", model.ErrInvalidInput)
		}
		descriptors = append(descriptors, desc)
	}
	if err := scanner.Err(); err != nil {
		logger.Error("Failed to read bean seed file", "error", err, "path", path)
		return 0, model.NewAppError("SEED_FILE_ERROR", "シードファイルの読み込みに失敗しました。", "", err)
	}

	return s.ImportBeans(ctx, descriptors)
}

func parseBeanLine(line string) (model.BeanDescriptor, error) {
	fields := strings.Split(line, ":")
	if len(fields) != 4 {
		return model.BeanDescriptor{}, fmt.Errorf("expected 4 fields, got %d", len(fields))
	}

	colorCode, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return model.BeanDescriptor{}, fmt.Errorf("invalid color code %q", fields[2])
	}
	qualityCode, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return model.BeanDescriptor{}, fmt.Errorf("invalid quality code %q", fields[3])
	}

	desc := model.BeanDescriptor{
		Name:      strings.TrimSpace(fields[0]),
		ShortDesc: strings.TrimSpace(fields[1]),
		Color:     model.Color(colorCode),
		Quality:   model.Quality(qualityCode),
	}
	if desc.Name == "" {
		return model.BeanDescriptor{}, fmt.Errorf("empty bean name")
	}
	if !desc.Color.Valid() {
		return model.BeanDescriptor{}, fmt.Errorf("color code %d out of range", colorCode)
	}
	if !desc.Quality.Valid() {
		return model.BeanDescriptor{}, fmt.Errorf("quality code %d out of range", qualityCode)
	}
	return desc, nil
}
